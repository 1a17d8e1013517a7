package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"

	"golang.org/x/crypto/nacl/secretbox"
)

// Utilidades de cifrado simétrico para credenciales guardadas (SMTP, integraciones).
// No participa en los invariantes del libro de stock; las contraseñas de usuarios
// van con bcrypt en el caso de uso de auth.

// KeySize tamaño de la llave secretbox en bytes.
const KeySize = 32

const nonceSize = 24

// GenerateKey genera una llave aleatoria de 32 bytes codificada en base64.
// Generar una sola vez y guardarla fuera del repositorio.
func GenerateKey() (string, error) {
	var key [KeySize]byte
	if _, err := rand.Read(key[:]); err != nil {
		return "", fmt.Errorf("generar llave: %w", err)
	}
	return base64.StdEncoding.EncodeToString(key[:]), nil
}

// Encrypt cifra un mensaje con la llave (base64) y devuelve nonce+ciphertext en base64.
func Encrypt(message, encodedKey string) (string, error) {
	key, err := decodeKey(encodedKey)
	if err != nil {
		return "", err
	}
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fmt.Errorf("generar nonce: %w", err)
	}
	sealed := secretbox.Seal(nonce[:], []byte(message), &nonce, &key)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt descifra un mensaje producido por Encrypt.
func Decrypt(encoded, encodedKey string) (string, error) {
	key, err := decodeKey(encodedKey)
	if err != nil {
		return "", err
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decodificar mensaje: %w", err)
	}
	if len(raw) < nonceSize {
		return "", fmt.Errorf("mensaje cifrado demasiado corto")
	}
	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])
	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &key)
	if !ok {
		return "", fmt.Errorf("mensaje cifrado inválido o llave incorrecta")
	}
	return string(plain), nil
}

func decodeKey(encodedKey string) ([KeySize]byte, error) {
	var key [KeySize]byte
	raw, err := base64.StdEncoding.DecodeString(encodedKey)
	if err != nil {
		return key, fmt.Errorf("decodificar llave: %w", err)
	}
	if len(raw) != KeySize {
		return key, fmt.Errorf("llave debe tener %d bytes, tiene %d", KeySize, len(raw))
	}
	copy(key[:], raw)
	return key, nil
}

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*-_="

// RandomPassword genera una contraseña aleatoria para usuarios nuevos o reseteos.
func RandomPassword(length int) (string, error) {
	if length <= 0 {
		length = 10
	}
	out := make([]byte, length)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generar contraseña: %w", err)
		}
		out[i] = passwordAlphabet[n.Int64()]
	}
	return string(out), nil
}
