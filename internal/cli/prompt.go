package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"artist-analytics/internal/core/domain"
	ports "artist-analytics/internal/core/ports/output"
)

// promptCredentials asks for whichever credential is still missing.
func promptCredentials(in io.Reader, out io.Writer, creds ports.Credentials) (ports.Credentials, error) {
	reader := bufio.NewReader(in)

	if creds.ClientID == "" {
		id, err := prompt(reader, out, "Enter your Spotify Client ID: ")
		if err != nil {
			return creds, err
		}
		creds.ClientID = id
	}

	if creds.ClientSecret == "" {
		secret, err := prompt(reader, out, "Enter your Spotify Client Secret: ")
		if err != nil {
			return creds, err
		}
		creds.ClientSecret = secret
	}

	return creds, nil
}

func prompt(reader *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)

	line, err := reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			fmt.Fprintln(out)
			return "", domain.ErrMissingCredentials
		}
	}
	return strings.TrimSpace(line), nil
}
