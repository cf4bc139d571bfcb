package domain

import "time"

type ManagerLinkStatus string

const (
	ManagerLinkStatusNone     ManagerLinkStatus = "NONE"
	ManagerLinkStatusPending  ManagerLinkStatus = "PENDING"
	ManagerLinkStatusActive   ManagerLinkStatus = "ACTIVE"
	ManagerLinkStatusInactive ManagerLinkStatus = "INACTIVE"
	ManagerLinkStatusCanceled ManagerLinkStatus = "CANCELED"
)

// ParseManagerLinkStatus converte o status da rede. REFUSED é tratado como CANCELED
// e qualquer valor desconhecido vira NONE.
func ParseManagerLinkStatus(value string) ManagerLinkStatus {
	switch value {
	case "PENDING":
		return ManagerLinkStatusPending
	case "ACTIVE":
		return ManagerLinkStatusActive
	case "INACTIVE":
		return ManagerLinkStatusInactive
	case "CANCELED", "CANCELLED", "REFUSED":
		return ManagerLinkStatusCanceled
	default:
		return ManagerLinkStatusNone
	}
}

// ManagerLink é o vínculo entre a conta do tenant e a conta gerente da plataforma
type ManagerLink struct {
	CompanyID  string            `json:"companyId"`
	CustomerID string            `json:"customerId"`
	ManagerID  string            `json:"managerId"`
	LinkID     string            `json:"linkId,omitempty"`
	Status     ManagerLinkStatus `json:"status"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// Motivos retornados na verificação de vínculo
const (
	LinkReasonTestAccount         = "TEST_ACCOUNT"
	LinkReasonTestTokenProduction = "TEST_TOKEN_PRODUCTION_ACCOUNT"
	LinkReasonActive              = "LINK_ACTIVE"
	LinkReasonNotActive           = "LINK_NOT_ACTIVE"
	LinkReasonNoLink              = "NO_LINK"
)

type LinkCheck struct {
	Linked    bool              `json:"linked"`
	CanVerify bool              `json:"canVerify"`
	Reason    string            `json:"reason,omitempty"`
	Status    ManagerLinkStatus `json:"status,omitempty"`
}

// LinkResult é o resultado das operações de convite, reativação e aceite
type LinkResult struct {
	CustomerID     string            `json:"customerId"`
	ManagerID      string            `json:"managerId"`
	LinkID         string            `json:"linkId,omitempty"`
	Status         ManagerLinkStatus `json:"status,omitempty"`
	AlreadyInvited bool              `json:"alreadyInvited,omitempty"`
	Message        string            `json:"message,omitempty"`
}
