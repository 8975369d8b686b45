// Package util contains any functions used across the application that don't match
// any other package
package util

import "os"

// dockerEnvFile is created by the docker runtime in every container
var dockerEnvFile = "/.dockerenv"

// IsRunningInDocker reports whether the process runs inside a docker container
func IsRunningInDocker() bool {
	_, err := os.Stat(dockerEnvFile)
	return err == nil
}
