// Package version carries the library version reported to PromoStandards
// endpoints in the User-Agent header.
//
// The version and git commit are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/promostandards/version.Version=1.2.0"
//
// When unset, the module version and VCS revision recorded by the Go
// toolchain are used.
package version
