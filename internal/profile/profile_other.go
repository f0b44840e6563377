//go:build !windows

package profile

const userDataEnvName = ""
