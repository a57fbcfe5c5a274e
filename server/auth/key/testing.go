package key

// GenerateTestPem is GeneratePem for tests, it panics on failure
func GenerateTestPem() []byte {
	pemBytes, err := GeneratePem()
	if err != nil {
		panic(err)
	}
	return pemBytes
}
