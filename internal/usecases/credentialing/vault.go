package credentialing

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/documentstore"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
	"github.com/vfg2006/multiplatform-ads-api/internal/usecases/caching"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrEmptySecret = errors.New("SECRET_KEY vazio")
	ErrDecrypt     = errors.New("não foi possível descriptografar as credenciais")
)

const keyInfo = "advertising-credentials-v1"

// sealedCredentials é o formato gravado: nonce + texto cifrado, ligado à chave do documento
type sealedCredentials struct {
	Platform   domain.Platform `json:"platform"`
	Nonce      []byte          `json:"nonce"`
	Ciphertext []byte          `json:"ciphertext"`
}

// Vault guarda as credenciais de cada tenant criptografadas com XChaCha20-Poly1305
type Vault struct {
	collection *caching.Collection[sealedCredentials]
	key        []byte
}

func NewVault(store documentstore.Store, secret string) (*Vault, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(keyInfo)), key); err != nil {
		return nil, fmt.Errorf("erro ao derivar chave: %w", err)
	}

	return &Vault{
		collection: caching.NewCollection[sealedCredentials](store, documentstore.CollectionCredentials),
		key:        key,
	}, nil
}

func (v *Vault) Save(ctx context.Context, companyID string, creds domain.PlatformCredentials) error {
	docKey := domain.DocumentKey(companyID, creds.Platform)

	plaintext, err := json.Marshal(creds.Data)
	if err != nil {
		return fmt.Errorf("erro ao serializar credenciais: %w", err)
	}

	aead, err := chacha20poly1305.NewX(v.key)
	if err != nil {
		return err
	}

	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("erro ao gerar nonce: %w", err)
	}

	sealed := sealedCredentials{
		Platform:   creds.Platform,
		Nonce:      nonce,
		Ciphertext: aead.Seal(nil, nonce, plaintext, []byte(docKey)),
	}

	return v.collection.Put(ctx, docKey, sealed)
}

// Load retorna nil, nil quando o tenant não tem credenciais para a plataforma
func (v *Vault) Load(ctx context.Context, companyID string, platform domain.Platform) (*domain.PlatformCredentials, error) {
	docKey := domain.DocumentKey(companyID, platform)

	entry, err := v.collection.Get(ctx, docKey)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}

	aead, err := chacha20poly1305.NewX(v.key)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(nil, entry.Value.Nonce, entry.Value.Ciphertext, []byte(docKey))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDecrypt, docKey)
	}

	data := make(map[string]string)
	if err := json.Unmarshal(plaintext, &data); err != nil {
		return nil, fmt.Errorf("erro ao decodificar credenciais: %w", err)
	}

	return &domain.PlatformCredentials{Platform: platform, Data: data}, nil
}
