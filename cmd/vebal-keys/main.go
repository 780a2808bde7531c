// Command vebal-keys manages the encrypted signer key of the sync service.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v2"

	"github.com/chainsafe/vebal-sync/pkg/keys"
)

const appName = "vebal-keys"

var (
	keyEnvFlag = cli.StringFlag{
		Name:  "key-env",
		Usage: "Environment variable holding the hex private key",
		Value: "SIGNER_PRIVATE_KEY",
	}
	passphraseEnvFlag = cli.StringFlag{
		Name:  "passphrase-env",
		Usage: "Environment variable holding the passphrase",
		Value: "KEY_PASSPHRASE",
	}
)

func main() {
	app := cli.NewApp()
	app.Name = appName
	app.Usage = "Encrypt and inspect the signer key used by vebal-sync"
	app.Commands = []*cli.Command{
		{
			Name:   "encrypt",
			Usage:  "Print the value for ethereum.encrypted_signer_key",
			Flags:  []cli.Flag{&keyEnvFlag, &passphraseEnvFlag},
			Action: encrypt,
		},
		{
			Name:      "address",
			Usage:     "Decrypt an encrypted key and print its address",
			ArgsUsage: "<encrypted-key>",
			Flags:     []cli.Flag{&passphraseEnvFlag},
			Action:    address,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func fromEnv(name string) (string, error) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return "", fmt.Errorf("%s must be set", name)
	}
	return v, nil
}

func encrypt(c *cli.Context) error {
	hexKey, err := fromEnv(c.String(keyEnvFlag.Name))
	if err != nil {
		return err
	}
	passphrase, err := fromEnv(c.String(passphraseEnvFlag.Name))
	if err != nil {
		return err
	}

	raw := common.FromHex(hexKey)
	signer, err := keys.SignerFromBytes(raw)
	if err != nil {
		return fmt.Errorf("invalid private key: %w", err)
	}
	encrypted, err := keys.EncryptSignerKey(raw, passphrase)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.ErrWriter, "signer address: %s\n", signer.Address.Hex())
	fmt.Fprintln(c.App.Writer, encrypted)
	return nil
}

func address(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("expected exactly one encrypted key")
	}
	passphrase, err := fromEnv(c.String(passphraseEnvFlag.Name))
	if err != nil {
		return err
	}

	raw, err := keys.DecryptSignerKey(c.Args().First(), passphrase)
	if err != nil {
		return err
	}
	signer, err := keys.SignerFromBytes(raw)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, signer.Address.Hex())
	return nil
}
