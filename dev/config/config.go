package config

// CONFIG_YML_TEMPLATE is written out when no config file exists yet.
// It takes the quoted private key pem & the sqlite pass phrase.
const CONFIG_YML_TEMPLATE = `aidline:
  privateKeyPem: %s
  # bcrypt hash of the owner's password, from 'aidline passwd'
  ownerPasswordHash:
  # defaults to $HOME/aidline, or ./dev with --dev
  dataDir:
  cron:
    timeZone: "UTC"
  listener:
    port: 3000

sqlite:
  passPhrase: %s

sos:
  emergencyNumber: "9311314442"
  # web, android or ios
  platform: android
  # intent or twilio
  dispatcher: intent
  messageDelayMs: 500

# Here you add the contacts that can be picked as emergency contacts.
# e.g.
# addressBook:
#   path: /home/me/aidline/contacts.yml
#
# with contacts.yml as:
# contacts:
#   - id: "1"
#     name: Mum
#     phoneNumbers:
#       - label: mobile
#         number: "+15555550100"
#
addressBook:
  path:

location:
  # MaxMind GeoLite2 City db, used when a client doesn't send its location
  geoipDbPath:

gemini:
  apiKey:
  model: gemini-2.0-flash

twilio:
  accountSid:
  authToken:
  messagingServiceSid:
  number:

google:
  applicationCredentials:
  storage:
    bucket:
    prefix:
    sqliteBackupSchedule: "*/30 * * * *"
    enableSqliteBackupAndSync: false

log:
  file:
  toConsole: true
`
