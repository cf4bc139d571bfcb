package managerlinking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/documentstore"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/googleads"
	googleadsdomain "github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/googleads/googleadsclient"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/googleads/mocks"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
	"github.com/vfg2006/multiplatform-ads-api/internal/usecases/caching"
	"github.com/vfg2006/multiplatform-ads-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

const (
	managerID  = "9990001111"
	customerID = "1234567890"
	companyID  = "empresa-1"
	linkName   = "customers/9990001111/customerClientLinks/1234567890~555"
	mgrLink    = "customers/1234567890/customerManagerLinks/9990001111~555"
)

var (
	userAuth    = googleadsclient.Auth{AccessToken: "user", LoginCustomerID: customerID}
	managerAuth = googleadsclient.Auth{AccessToken: "manager", LoginCustomerID: managerID}
)

func newService(links *mocks.MockLinkManager) *Service {
	return newServiceWith(links)
}

func newServiceWith(links googleads.LinkManager) *Service {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	store := documentstore.NewMemoryStore(func() time.Time { return now })
	svc := NewService(links, caching.NewCollection[domain.ManagerLink](store, documentstore.CollectionManagerLinks), "999-000-1111")
	svc.now = func() time.Time { return now }
	return svc
}

func duplicateError() error {
	return apiErrors.Wrap(&googleadsdomain.APIError{
		StatusCode: 400,
		Response: googleadsdomain.ErrorResponse{Error: googleadsdomain.ErrorBody{
			Code: 400,
			Details: []googleadsdomain.ErrorDetail{{Errors: []googleadsdomain.FailureError{
				{ErrorCode: map[string]string{"managerLinkError": "ALREADY_INVITED_BY_THIS_MANAGER"}},
			}}},
		}},
	}, apiErrors.ErrAPI, "mutate falhou")
}

func clientLink(status string) *googleadsdomain.CustomerClientLink {
	return &googleadsdomain.CustomerClientLink{
		ResourceName:   linkName,
		ClientCustomer: "customers/" + customerID,
		ManagerLinkID:  "555",
		Status:         status,
	}
}

func managerLink(status string) *googleadsdomain.CustomerManagerLink {
	return &googleadsdomain.CustomerManagerLink{
		ResourceName:    mgrLink,
		ManagerCustomer: "customers/" + managerID,
		ManagerLinkID:   "555",
		Status:          status,
	}
}

func storedStatus(t *testing.T, svc *Service) domain.ManagerLinkStatus {
	stored, err := svc.Stored(context.Background(), companyID, customerID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	return stored.Status
}

func TestIsLinkedToManager(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(links *mocks.MockLinkManager)
		expected domain.LinkCheck
	}{
		{
			name: "conta de teste é considerada vinculada",
			setup: func(links *mocks.MockLinkManager) {
				links.EXPECT().GetCustomer(gomock.Any(), userAuth, customerID).
					Return(&googleadsdomain.Customer{ID: customerID, TestAccount: true}, nil)
			},
			expected: domain.LinkCheck{Linked: true, CanVerify: true, Reason: domain.LinkReasonTestAccount},
		},
		{
			name: "token de teste contra conta de produção não pode verificar",
			setup: func(links *mocks.MockLinkManager) {
				links.EXPECT().GetCustomer(gomock.Any(), userAuth, customerID).
					Return(nil, apiErrors.New(apiErrors.ErrTestTokenProductionAccount, "token não aprovado"))
			},
			expected: domain.LinkCheck{Linked: false, CanVerify: false, Reason: domain.LinkReasonTestTokenProduction},
		},
		{
			name: "vínculo ativo",
			setup: func(links *mocks.MockLinkManager) {
				links.EXPECT().GetCustomer(gomock.Any(), userAuth, customerID).Return(&googleadsdomain.Customer{ID: customerID}, nil)
				links.EXPECT().FindManagerLink(gomock.Any(), userAuth, customerID, managerID).Return(managerLink("ACTIVE"), nil)
			},
			expected: domain.LinkCheck{Linked: true, CanVerify: true, Reason: domain.LinkReasonActive, Status: domain.ManagerLinkStatusActive},
		},
		{
			name: "vínculo pendente não está ativo",
			setup: func(links *mocks.MockLinkManager) {
				links.EXPECT().GetCustomer(gomock.Any(), userAuth, customerID).Return(&googleadsdomain.Customer{ID: customerID}, nil)
				links.EXPECT().FindManagerLink(gomock.Any(), userAuth, customerID, managerID).Return(managerLink("PENDING"), nil)
			},
			expected: domain.LinkCheck{Linked: false, CanVerify: true, Reason: domain.LinkReasonNotActive, Status: domain.ManagerLinkStatusPending},
		},
		{
			name: "sem vínculo",
			setup: func(links *mocks.MockLinkManager) {
				links.EXPECT().GetCustomer(gomock.Any(), userAuth, customerID).Return(&googleadsdomain.Customer{ID: customerID}, nil)
				links.EXPECT().FindManagerLink(gomock.Any(), userAuth, customerID, managerID).Return(nil, nil)
			},
			expected: domain.LinkCheck{Linked: false, CanVerify: true, Reason: domain.LinkReasonNoLink, Status: domain.ManagerLinkStatusNone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			links := mocks.NewMockLinkManager(ctrl)
			tt.setup(links)

			check, err := newService(links).IsLinkedToManager(context.Background(), userAuth, "123-456-7890", managerID)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, *check)
		})
	}
}

func TestSendInvitation(t *testing.T) {
	t.Run("cria convite pendente e grava o estado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		links := mocks.NewMockLinkManager(ctrl)
		links.EXPECT().CreateClientLink(gomock.Any(), managerAuth, managerID, customerID).Return(linkName, nil)
		svc := newService(links)

		result, err := svc.SendInvitation(context.Background(), companyID, customerID, managerAuth)
		require.NoError(t, err)

		assert.Equal(t, domain.ManagerLinkStatusPending, result.Status)
		assert.Equal(t, "555", result.LinkID)
		assert.False(t, result.AlreadyInvited)
		assert.Equal(t, domain.ManagerLinkStatusPending, storedStatus(t, svc))
	})

	t.Run("convite duplicado reativa o vínculo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		links := mocks.NewMockLinkManager(ctrl)
		links.EXPECT().CreateClientLink(gomock.Any(), managerAuth, managerID, customerID).Return("", duplicateError())
		links.EXPECT().FindClientLink(gomock.Any(), managerAuth, managerID, customerID).Return(clientLink("CANCELED"), nil)
		links.EXPECT().UpdateClientLinkStatus(gomock.Any(), managerAuth, managerID, linkName, "PENDING").Return(nil)

		result, err := newService(links).SendInvitation(context.Background(), companyID, customerID, managerAuth)
		require.NoError(t, err)

		assert.Equal(t, domain.ManagerLinkStatusPending, result.Status)
		assert.True(t, result.AlreadyInvited)
	})

	t.Run("convite duplicado sem reativação ainda é sucesso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		links := mocks.NewMockLinkManager(ctrl)
		links.EXPECT().CreateClientLink(gomock.Any(), managerAuth, managerID, customerID).Return("", duplicateError())
		links.EXPECT().FindClientLink(gomock.Any(), managerAuth, managerID, customerID).Return(nil, nil)

		result, err := newService(links).SendInvitation(context.Background(), companyID, customerID, managerAuth)
		require.NoError(t, err)

		assert.True(t, result.AlreadyInvited)
		assert.Empty(t, result.Status)
	})

	t.Run("convite duplicado com vínculo preso em CANCELED informa o status observado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		links := mocks.NewMockLinkManager(ctrl)
		links.EXPECT().CreateClientLink(gomock.Any(), managerAuth, managerID, customerID).Return("", duplicateError())
		links.EXPECT().FindClientLink(gomock.Any(), managerAuth, managerID, customerID).Return(clientLink("CANCELED"), nil)
		links.EXPECT().UpdateClientLinkStatus(gomock.Any(), managerAuth, managerID, linkName, gomock.Any()).Return(errors.New("transição recusada")).Times(2)

		result, err := newService(links).SendInvitation(context.Background(), companyID, customerID, managerAuth)
		require.NoError(t, err)

		assert.True(t, result.AlreadyInvited)
		assert.Equal(t, domain.ManagerLinkStatusCanceled, result.Status)
		assert.Equal(t, "555", result.LinkID)
	})

	t.Run("outros erros viram INVITATION_FAILED", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		links := mocks.NewMockLinkManager(ctrl)
		links.EXPECT().CreateClientLink(gomock.Any(), managerAuth, managerID, customerID).Return("", errors.New("timeout"))

		_, err := newService(links).SendInvitation(context.Background(), companyID, customerID, managerAuth)

		assert.Equal(t, apiErrors.ErrInvitationFailed, apiErrors.CodeOf(err, ""))
		assert.ErrorIs(t, err, ErrInvitation)
	})
}

func TestReactivate(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(links *mocks.MockLinkManager)
		validate func(t *testing.T, svc *Service, result *domain.LinkResult, err error)
	}{
		{
			name: "pendente não muda",
			setup: func(links *mocks.MockLinkManager) {
				links.EXPECT().FindClientLink(gomock.Any(), managerAuth, managerID, customerID).Return(clientLink("PENDING"), nil)
			},
			validate: func(t *testing.T, svc *Service, result *domain.LinkResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.ManagerLinkStatusPending, result.Status)
			},
		},
		{
			name: "cancelado volta direto para pendente",
			setup: func(links *mocks.MockLinkManager) {
				links.EXPECT().FindClientLink(gomock.Any(), managerAuth, managerID, customerID).Return(clientLink("CANCELED"), nil)
				links.EXPECT().UpdateClientLinkStatus(gomock.Any(), managerAuth, managerID, linkName, "PENDING").Return(nil)
			},
			validate: func(t *testing.T, svc *Service, result *domain.LinkResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.ManagerLinkStatusPending, result.Status)
				assert.Equal(t, domain.ManagerLinkStatusPending, storedStatus(t, svc))
			},
		},
		{
			name: "cancelado usa INACTIVE como passo intermediário",
			setup: func(links *mocks.MockLinkManager) {
				links.EXPECT().FindClientLink(gomock.Any(), managerAuth, managerID, customerID).Return(clientLink("REFUSED"), nil)
				gomock.InOrder(
					links.EXPECT().UpdateClientLinkStatus(gomock.Any(), managerAuth, managerID, linkName, "PENDING").Return(errors.New("transição inválida")),
					links.EXPECT().UpdateClientLinkStatus(gomock.Any(), managerAuth, managerID, linkName, "INACTIVE").Return(nil),
					links.EXPECT().UpdateClientLinkStatus(gomock.Any(), managerAuth, managerID, linkName, "PENDING").Return(nil),
				)
			},
			validate: func(t *testing.T, svc *Service, result *domain.LinkResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.ManagerLinkStatusPending, result.Status)
			},
		},
		{
			name: "ambas as tentativas falham",
			setup: func(links *mocks.MockLinkManager) {
				links.EXPECT().FindClientLink(gomock.Any(), managerAuth, managerID, customerID).Return(clientLink("CANCELED"), nil)
				links.EXPECT().UpdateClientLinkStatus(gomock.Any(), managerAuth, managerID, linkName, "PENDING").Return(errors.New("transição inválida"))
				links.EXPECT().UpdateClientLinkStatus(gomock.Any(), managerAuth, managerID, linkName, "INACTIVE").Return(errors.New("transição inválida"))
			},
			validate: func(t *testing.T, svc *Service, result *domain.LinkResult, err error) {
				assert.Nil(t, result)
				assert.Equal(t, apiErrors.ErrReactivateFailed, apiErrors.CodeOf(err, ""))
			},
		},
		{
			name: "inativo faz uma única transição",
			setup: func(links *mocks.MockLinkManager) {
				links.EXPECT().FindClientLink(gomock.Any(), managerAuth, managerID, customerID).Return(clientLink("INACTIVE"), nil)
				links.EXPECT().UpdateClientLinkStatus(gomock.Any(), managerAuth, managerID, linkName, "PENDING").Return(nil)
			},
			validate: func(t *testing.T, svc *Service, result *domain.LinkResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.ManagerLinkStatusPending, result.Status)
			},
		},
		{
			name: "sem vínculo",
			setup: func(links *mocks.MockLinkManager) {
				links.EXPECT().FindClientLink(gomock.Any(), managerAuth, managerID, customerID).Return(nil, nil)
			},
			validate: func(t *testing.T, svc *Service, result *domain.LinkResult, err error) {
				assert.Equal(t, apiErrors.ErrLinkNotFound, apiErrors.CodeOf(err, ""))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			links := mocks.NewMockLinkManager(ctrl)
			tt.setup(links)
			svc := newService(links)

			result, err := svc.Reactivate(context.Background(), companyID, customerID, managerAuth)
			tt.validate(t, svc, result, err)
		})
	}
}

func TestAccept(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(links *mocks.MockLinkManager)
		validate func(t *testing.T, svc *Service, result *domain.LinkResult, err error)
	}{
		{
			name: "pendente passa a ativo",
			setup: func(links *mocks.MockLinkManager) {
				links.EXPECT().FindManagerLink(gomock.Any(), userAuth, customerID, managerID).Return(managerLink("PENDING"), nil)
				links.EXPECT().UpdateManagerLinkStatus(gomock.Any(), userAuth, customerID, mgrLink, "ACTIVE").Return(nil)
			},
			validate: func(t *testing.T, svc *Service, result *domain.LinkResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.ManagerLinkStatusActive, result.Status)
				assert.Equal(t, domain.ManagerLinkStatusActive, storedStatus(t, svc))
			},
		},
		{
			name: "ativo não muda",
			setup: func(links *mocks.MockLinkManager) {
				links.EXPECT().FindManagerLink(gomock.Any(), userAuth, customerID, managerID).Return(managerLink("ACTIVE"), nil)
			},
			validate: func(t *testing.T, svc *Service, result *domain.LinkResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.ManagerLinkStatusActive, result.Status)
			},
		},
		{
			name: "cancelado é recuperado e aceito",
			setup: func(links *mocks.MockLinkManager) {
				links.EXPECT().FindManagerLink(gomock.Any(), userAuth, customerID, managerID).Return(managerLink("CANCELED"), nil)
				links.EXPECT().FindClientLink(gomock.Any(), managerAuth, managerID, customerID).Return(clientLink("CANCELED"), nil)
				links.EXPECT().UpdateClientLinkStatus(gomock.Any(), managerAuth, managerID, linkName, "PENDING").Return(nil)
				links.EXPECT().UpdateManagerLinkStatus(gomock.Any(), userAuth, customerID, mgrLink, "ACTIVE").Return(nil)
			},
			validate: func(t *testing.T, svc *Service, result *domain.LinkResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.ManagerLinkStatusActive, result.Status)
			},
		},
		{
			name: "cancelado sem recuperação",
			setup: func(links *mocks.MockLinkManager) {
				links.EXPECT().FindManagerLink(gomock.Any(), userAuth, customerID, managerID).Return(managerLink("CANCELED"), nil)
				links.EXPECT().FindClientLink(gomock.Any(), managerAuth, managerID, customerID).Return(clientLink("CANCELED"), nil)
				links.EXPECT().UpdateClientLinkStatus(gomock.Any(), managerAuth, managerID, linkName, gomock.Any()).Return(errors.New("bloqueado")).Times(2)
			},
			validate: func(t *testing.T, svc *Service, result *domain.LinkResult, err error) {
				assert.Equal(t, apiErrors.ErrLinkCanceledPermanently, apiErrors.CodeOf(err, ""))
				assert.True(t, apiErrors.HasCode(err, apiErrors.ErrReactivateFailed))
			},
		},
		{
			name: "falha no aceite",
			setup: func(links *mocks.MockLinkManager) {
				links.EXPECT().FindManagerLink(gomock.Any(), userAuth, customerID, managerID).Return(managerLink("PENDING"), nil)
				links.EXPECT().UpdateManagerLinkStatus(gomock.Any(), userAuth, customerID, mgrLink, "ACTIVE").Return(errors.New("permissão negada"))
			},
			validate: func(t *testing.T, svc *Service, result *domain.LinkResult, err error) {
				assert.Equal(t, apiErrors.ErrAcceptFailed, apiErrors.CodeOf(err, ""))
			},
		},
		{
			name: "sem convite",
			setup: func(links *mocks.MockLinkManager) {
				links.EXPECT().FindManagerLink(gomock.Any(), userAuth, customerID, managerID).Return(nil, nil)
			},
			validate: func(t *testing.T, svc *Service, result *domain.LinkResult, err error) {
				assert.Equal(t, apiErrors.ErrLinkNotFound, apiErrors.CodeOf(err, ""))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			links := mocks.NewMockLinkManager(ctrl)
			tt.setup(links)
			svc := newService(links)

			result, err := svc.Accept(context.Background(), companyID, customerID, userAuth, managerAuth)
			tt.validate(t, svc, result, err)
		})
	}
}

// networkLinks simula o lado da rede: cada transição pode ser recusada
type networkLinks struct {
	status   string
	rejected map[string]bool
}

func (n *networkLinks) GetCustomer(context.Context, googleadsclient.Auth, string) (*googleadsdomain.Customer, error) {
	return &googleadsdomain.Customer{ID: customerID}, nil
}

func (n *networkLinks) FindClientLink(context.Context, googleadsclient.Auth, string, string) (*googleadsdomain.CustomerClientLink, error) {
	return clientLink(n.status), nil
}

func (n *networkLinks) CreateClientLink(context.Context, googleadsclient.Auth, string, string) (string, error) {
	return "", duplicateError()
}

func (n *networkLinks) UpdateClientLinkStatus(_ context.Context, _ googleadsclient.Auth, _, _, status string) error {
	if n.rejected[n.status+"->"+status] {
		return errors.New("transição recusada")
	}
	n.status = status
	return nil
}

func (n *networkLinks) FindManagerLink(context.Context, googleadsclient.Auth, string, string) (*googleadsdomain.CustomerManagerLink, error) {
	return managerLink(n.status), nil
}

func (n *networkLinks) UpdateManagerLinkStatus(_ context.Context, _ googleadsclient.Auth, _, _, status string) error {
	n.status = status
	return nil
}

func TestReactivate_FromCanceledProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("de CANCELED termina em PENDING/ACTIVE ou REACTIVATE_FAILED", prop.ForAll(
		func(directRejected, inactiveRejected, pendingRejected bool) bool {
			network := &networkLinks{
				status: "CANCELED",
				rejected: map[string]bool{
					"CANCELED->PENDING":  directRejected,
					"CANCELED->INACTIVE": inactiveRejected,
					"INACTIVE->PENDING":  pendingRejected,
				},
			}
			svc := newServiceWith(network)

			result, err := svc.Reactivate(context.Background(), companyID, customerID, managerAuth)
			if err != nil {
				return result == nil && apiErrors.CodeOf(err, "") == apiErrors.ErrReactivateFailed
			}

			final := domain.ParseManagerLinkStatus(network.status)
			return (final == domain.ManagerLinkStatusPending || final == domain.ManagerLinkStatusActive) &&
				result.Status == final
		},
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
