package domain

import "time"

type PlatformStatus struct {
	Configured bool     `json:"configured"`
	Errors     []string `json:"errors,omitempty"`
}

// ServiceStatus é o relatório de configuração do serviço
type ServiceStatus struct {
	Configured bool                        `json:"configured"`
	Errors     []string                    `json:"errors,omitempty"`
	Platforms  map[Platform]PlatformStatus `json:"platforms"`
	APIVersion string                      `json:"apiVersion,omitempty"`
	CheckedAt  time.Time                   `json:"checkedAt"`
}
