package managerlinking

import "errors"

// Erros específicos do vínculo com a conta gerente
var (
	ErrLinkLookup        = errors.New("error looking up manager link")
	ErrLinkNotFound      = errors.New("manager link not found")
	ErrInvitation        = errors.New("error sending manager invitation")
	ErrReactivate        = errors.New("manager link could not be reactivated")
	ErrAccept            = errors.New("error accepting manager invitation")
	ErrCanceledForever   = errors.New("manager link canceled permanently")
	ErrCustomerRequired  = errors.New("customer ID is required")
	ErrManagerNotDefined = errors.New("manager customer ID is not configured")
)
