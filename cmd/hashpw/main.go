// Command hashpw prompts for a password and prints its bcrypt hash.
// Useful for seeding an admin user row by hand.
package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/iudanet/gatekeeper/internal/crypto"
)

func main() {
	password, err := readPassword("Password: ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read password: %v\n", err)
		os.Exit(1)
	}

	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read password: %v\n", err)
		os.Exit(1)
	}

	if password != confirm {
		fmt.Fprintln(os.Stderr, "passwords do not match")
		os.Exit(1)
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}

func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	fd := int(os.Stdin.Fd())
	pwBytes, err := term.ReadPassword(fd)
	fmt.Println("")
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}
