package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"go-jobboard-backend/pkg/security"
)

// Prints bcrypt hashes for seed accounts. With no arguments it hashes a random
// string, which is how the login timing placeholder hash is produced.
func main() {
	hasher := security.NewPasswordHasher(bcrypt.DefaultCost)

	passwords := os.Args[1:]
	if len(passwords) == 0 {
		buf := make([]byte, 24)
		if _, err := rand.Read(buf); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		passwords = []string{hex.EncodeToString(buf)}
	}

	for _, pass := range passwords {
		hash, err := hasher.Hash(pass)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Printf("Password: %s\nHash: %s\n\n", pass, hash)
	}
}
