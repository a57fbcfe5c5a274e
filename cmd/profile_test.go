package cmd

import "testing"

func TestProfileCmd(t *testing.T) {
	useTestConfig(t, nil)

	runCases(t, TestDataProvider{
		{
			description: "Should show an empty profile before one is saved",
			cmd:         createProfileShowCmd,
			expectedOut: `"bloodType": ""`,
		},
		{
			description: "Should NOT save without any profile flag",
			cmd:         createProfileSetCmd,
			expectedOut: "at least one profile flag is required",
		},
		{
			description: "Should save the given fields",
			cmd:         createProfileSetCmd,
			args:        []string{"--name", "Ada", "--blood-type", "O-"},
			expectedOut: "Profile saved successfully",
		},
		{
			description: "Should only change the given fields",
			cmd:         createProfileSetCmd,
			args:        []string{"--allergies", "penicillin"},
			expectedOut: "Profile saved successfully",
		},
		{
			description: "Should show the saved profile",
			cmd:         createProfileShowCmd,
			expectedOut: `"bloodType": "O-"`,
		},
		{
			description: "Should keep earlier fields when others are set",
			cmd:         createProfileShowCmd,
			expectedOut: `"allergies": "penicillin"`,
		},
	})
}
