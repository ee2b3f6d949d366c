// Package config manages user-level settings stored at
// ~/.pkgsmith/config.yaml: the default remote user and host, license
// identifier, and author identity used when the generate command is not
// given explicit flags.
package config
