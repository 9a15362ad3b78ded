package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Prints a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
// The password is read from the first argument or, if absent, from stdin.
func main() {
	password, err := readPassword(os.Args[1:], os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "password hash failed:", err)
		os.Exit(1)
	}

	hash, err := hashPassword(password)
	if err != nil {
		fmt.Fprintln(os.Stderr, "password hash failed:", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}

func readPassword(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password must not be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
