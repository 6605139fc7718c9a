// Command sparkledemo seals and opens a message under Schwaemm256-128,
// printing the ciphertext, tag, and recovered plaintext.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/sparkle-suite/sparkle/esch256"
	"github.com/sparkle-suite/sparkle/schwaemm256128"
)

func main() {
	log := slog.New(slog.Default().Handler())

	message := flag.String("message", "the quick brown fox", "the plaintext to seal")
	ad := flag.String("ad", "sparkledemo", "the associated data to authenticate")
	flag.Parse()

	key := make([]byte, schwaemm256128.KeySize)
	nonce := make([]byte, schwaemm256128.NonceSize)
	if _, err := rand.Read(key); err != nil {
		log.Error("failed to generate key", "err", err)
		os.Exit(1)
	}
	if _, err := rand.Read(nonce); err != nil {
		log.Error("failed to generate nonce", "err", err)
		os.Exit(1)
	}

	pt := []byte(*message)
	adBytes := []byte(*ad)

	digest := esch256.Sum256(pt)
	log.Info("hashed plaintext", "esch256", hex.EncodeToString(digest[:]))

	ct, tag, err := schwaemm256128.Encrypt(key, nonce, adBytes, pt)
	if err != nil {
		log.Error("encrypt failed", "err", err)
		os.Exit(1)
	}
	log.Info("sealed message", "ciphertext", hex.EncodeToString(ct), "tag", hex.EncodeToString(tag))

	recovered, ok, err := schwaemm256128.Decrypt(key, nonce, tag, adBytes, ct)
	if err != nil {
		log.Error("decrypt failed", "err", err)
		os.Exit(1)
	}
	if !ok {
		log.Error("tag did not verify")
		os.Exit(1)
	}

	fmt.Printf("recovered plaintext: %s\n", recovered)
}
