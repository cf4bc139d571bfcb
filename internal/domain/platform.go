package domain

import "fmt"

// Platform identifica uma rede de anúncios integrada
type Platform string

const (
	PlatformGoogleAds Platform = "google-ads"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformMeta      Platform = "meta"
	PlatformTaboola   Platform = "taboola"
	PlatformOutbrain  Platform = "outbrain"
)

// AllPlatforms define a ordem fixa de consulta às redes (a rede principal primeiro)
var AllPlatforms = []Platform{
	PlatformGoogleAds,
	PlatformLinkedIn,
	PlatformMeta,
	PlatformTaboola,
	PlatformOutbrain,
}

func (p Platform) String() string {
	return string(p)
}

func (p Platform) IsValid() bool {
	for _, known := range AllPlatforms {
		if p == known {
			return true
		}
	}
	return false
}

// ParsePlatform converte o identificador recebido em uma Platform conhecida
func ParsePlatform(value string) (Platform, error) {
	p := Platform(value)
	if !p.IsValid() {
		return "", fmt.Errorf("plataforma não suportada: %s", value)
	}
	return p, nil
}

// DocumentKey monta a chave de documento por tenant e plataforma
func DocumentKey(companyID string, platform Platform) string {
	return fmt.Sprintf("%s_%s", companyID, platform)
}
