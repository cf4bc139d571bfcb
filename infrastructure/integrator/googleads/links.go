package googleads

import (
	"context"
	"fmt"

	googleadsdomain "github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/googleads/googleadsclient"
)

const (
	clientLinkQuery  = `SELECT customer_client_link.resource_name, customer_client_link.client_customer, customer_client_link.manager_link_id, customer_client_link.status FROM customer_client_link WHERE customer_client_link.client_customer = 'customers/%s'`
	managerLinkQuery = `SELECT customer_manager_link.resource_name, customer_manager_link.manager_customer, customer_manager_link.manager_link_id, customer_manager_link.status FROM customer_manager_link WHERE customer_manager_link.manager_customer = 'customers/%s'`
)

// LinkManager expõe as operações de vínculo com a conta gerente.
// FindClientLink e FindManagerLink devolvem nil, nil quando não há vínculo.
//
//go:generate mockgen -source=links.go -destination=mocks/links.go -package=mocks
type LinkManager interface {
	GetCustomer(ctx context.Context, auth googleadsclient.Auth, customerID string) (*googleadsdomain.Customer, error)
	FindClientLink(ctx context.Context, auth googleadsclient.Auth, managerID, customerID string) (*googleadsdomain.CustomerClientLink, error)
	CreateClientLink(ctx context.Context, auth googleadsclient.Auth, managerID, customerID string) (string, error)
	UpdateClientLinkStatus(ctx context.Context, auth googleadsclient.Auth, managerID, resourceName, status string) error
	FindManagerLink(ctx context.Context, auth googleadsclient.Auth, customerID, managerID string) (*googleadsdomain.CustomerManagerLink, error)
	UpdateManagerLinkStatus(ctx context.Context, auth googleadsclient.Auth, customerID, resourceName, status string) error
}

// FindClientLink consulta o vínculo pelo lado do gerente
func (s *GoogleAdsIntegrator) FindClientLink(ctx context.Context, auth googleadsclient.Auth, managerID, customerID string) (*googleadsdomain.CustomerClientLink, error) {
	rows, err := s.Client.Search(ctx, auth, managerID, fmt.Sprintf(clientLinkQuery, customerID))
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if row.CustomerClientLink != nil {
			return row.CustomerClientLink, nil
		}
	}
	return nil, nil
}

// CreateClientLink envia o convite PENDING agindo como gerente
func (s *GoogleAdsIntegrator) CreateClientLink(ctx context.Context, auth googleadsclient.Auth, managerID, customerID string) (string, error) {
	op := googleadsdomain.MutateOperation{Create: googleadsdomain.CustomerClientLinkResource{
		ClientCustomer: "customers/" + customerID,
		Status:         "PENDING",
	}}

	result, err := s.Client.MutateClientLink(ctx, auth, managerID, op)
	if err != nil {
		return "", err
	}
	return result.ResourceName, nil
}

func (s *GoogleAdsIntegrator) UpdateClientLinkStatus(ctx context.Context, auth googleadsclient.Auth, managerID, resourceName, status string) error {
	op := googleadsdomain.MutateOperation{
		Update:     googleadsdomain.CustomerClientLinkResource{ResourceName: resourceName, Status: status},
		UpdateMask: "status",
	}

	_, err := s.Client.MutateClientLink(ctx, auth, managerID, op)
	return err
}

// FindManagerLink consulta o vínculo pelo lado do cliente
func (s *GoogleAdsIntegrator) FindManagerLink(ctx context.Context, auth googleadsclient.Auth, customerID, managerID string) (*googleadsdomain.CustomerManagerLink, error) {
	rows, err := s.Client.Search(ctx, auth, customerID, fmt.Sprintf(managerLinkQuery, managerID))
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if row.CustomerManagerLink != nil {
			return row.CustomerManagerLink, nil
		}
	}
	return nil, nil
}

func (s *GoogleAdsIntegrator) UpdateManagerLinkStatus(ctx context.Context, auth googleadsclient.Auth, customerID, resourceName, status string) error {
	op := googleadsdomain.MutateOperation{
		Update:     googleadsdomain.CustomerManagerLinkResource{ResourceName: resourceName, Status: status},
		UpdateMask: "status",
	}

	_, err := s.Client.Mutate(ctx, auth, customerID, "customerManagerLinks", []googleadsdomain.MutateOperation{op})
	return err
}
