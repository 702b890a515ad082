// Package config manages user-level settings stored at ~/.modinit/config.yaml
// and MODINIT_* environment variables: where the template archive comes from,
// how it is downloaded, and which entries the copy step skips.
package config
