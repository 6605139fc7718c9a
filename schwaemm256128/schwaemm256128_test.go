package schwaemm256128_test

import (
	"bytes"
	"testing"

	"github.com/sparkle-suite/sparkle/schwaemm256128"
)

func fill(n int, seed byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = seed + byte(i)
	}
	return b
}

func TestRoundTrip(t *testing.T) {
	key := fill(schwaemm256128.KeySize, 1)
	nonce := fill(schwaemm256128.NonceSize, 2)
	for _, adLen := range []int{0, 1, 31, 32, 33, 65} {
		for _, ptLen := range []int{0, 1, 31, 32, 33, 65} {
			ad := fill(adLen, 3)
			pt := fill(ptLen, 4)
			ct, tag, err := schwaemm256128.Encrypt(key, nonce, ad, pt)
			if err != nil {
				t.Fatalf("Encrypt(ad=%d,pt=%d): %v", adLen, ptLen, err)
			}
			if len(tag) != schwaemm256128.TagSize {
				t.Fatalf("len(tag) = %d, want %d", len(tag), schwaemm256128.TagSize)
			}
			got, ok, err := schwaemm256128.Decrypt(key, nonce, tag, ad, ct)
			if err != nil {
				t.Fatalf("Decrypt(ad=%d,pt=%d): %v", adLen, ptLen, err)
			}
			if !ok {
				t.Fatalf("Decrypt(ad=%d,pt=%d): tag did not verify", adLen, ptLen)
			}
			if !bytes.Equal(got, pt) {
				t.Fatalf("Decrypt(ad=%d,pt=%d) = %x, want %x", adLen, ptLen, got, pt)
			}
		}
	}
}

func TestInvalidKeySize(t *testing.T) {
	nonce := fill(schwaemm256128.NonceSize, 2)
	if _, _, err := schwaemm256128.Encrypt(fill(3, 0), nonce, nil, nil); err == nil {
		t.Fatal("Encrypt with bad key size: want error, got nil")
	}
}

func TestInvalidNonceSize(t *testing.T) {
	key := fill(schwaemm256128.KeySize, 1)
	if _, _, err := schwaemm256128.Encrypt(key, fill(3, 0), nil, nil); err == nil {
		t.Fatal("Encrypt with bad nonce size: want error, got nil")
	}
}

func TestInvalidTagSize(t *testing.T) {
	key := fill(schwaemm256128.KeySize, 1)
	nonce := fill(schwaemm256128.NonceSize, 2)
	if _, _, err := schwaemm256128.Decrypt(key, nonce, fill(3, 0), nil, nil); err == nil {
		t.Fatal("Decrypt with bad tag size: want error, got nil")
	}
}

func TestTamperedADFailsToDecrypt(t *testing.T) {
	key := fill(schwaemm256128.KeySize, 1)
	nonce := fill(schwaemm256128.NonceSize, 2)
	pt := fill(70, 4)
	ad := []byte("associated-data")
	ct, tag, err := schwaemm256128.Encrypt(key, nonce, ad, pt)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	tampered := append([]byte(nil), ad...)
	tampered[0] ^= 1
	got, ok, err := schwaemm256128.Decrypt(key, nonce, tag, tampered, ct)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if ok {
		t.Fatal("Decrypt: tampered associated data verified")
	}
	for i, b := range got {
		if b != 0 {
			t.Fatalf("got[%d] = %d, want 0 on auth failure", i, b)
		}
	}
}
