// Утилита для генерации bcrypt-хеша админ-секрета под config.toml
package main

import (
	"fmt"
	"os"

	"github.com/TPD2004/kenton-car-wash/internal/auth"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashsecret <secret>")
		os.Exit(2)
	}

	hash, err := auth.HashSecret(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash secret: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}
