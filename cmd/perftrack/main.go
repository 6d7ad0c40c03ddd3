// Command perftrack is the operator CLI of the performance tracker: it seeds the
// database, prints the leaderboard and writes PDF reports to disk.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
