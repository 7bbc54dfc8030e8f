package tx

import (
	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
)

// RegisterNamespace creates a root namespace for a duration or a child under a parent.
type RegisterNamespace struct {
	BaseTx

	RegistrationType NamespaceRegistrationType `json:"registrationType"`

	// Duration is only meaningful for root namespaces
	Duration uint64 `json:"duration,omitempty"`

	// ParentID is only meaningful for child namespaces
	ParentID types.NamespaceID `json:"parentId,omitempty"`

	ID   types.NamespaceID `json:"id"`
	Name string            `json:"name"`
}

// NewRootNamespace creates a root namespace registration, deriving the id from name.
func NewRootNamespace(network NetworkType, name string, duration uint64) *RegisterNamespace {
	return &RegisterNamespace{
		BaseTx:           *NewBaseTx(TypeRegisterNamespace, network),
		RegistrationType: NamespaceRoot,
		Duration:         duration,
		ID:               NamespaceIDFromName(name, 0),
		Name:             name,
	}
}

// NewChildNamespace creates a child namespace registration under parent.
func NewChildNamespace(network NetworkType, name string, parent types.NamespaceID) *RegisterNamespace {
	return &RegisterNamespace{
		BaseTx:           *NewBaseTx(TypeRegisterNamespace, network),
		RegistrationType: NamespaceChild,
		ParentID:         parent,
		ID:               NamespaceIDFromName(name, parent),
		Name:             name,
	}
}

func (n *RegisterNamespace) Validate() error {
	if err := n.BaseTx.Validate(); err != nil {
		return err
	}
	if _, err := NamespaceRegistrationTypeFromRaw(uint8(n.RegistrationType)); err != nil {
		return err
	}
	if n.RegistrationType == NamespaceChild && n.ParentID == 0 {
		return required("parentId")
	}
	return ValidateNamespaceName(n.Name)
}

// AddressAlias links a namespace to an account address.
type AddressAlias struct {
	BaseTx

	NamespaceID types.NamespaceID `json:"namespaceId"`
	Address     types.Address     `json:"address"`
	Action      AliasAction       `json:"aliasAction"`
}

// NewAddressAlias creates a new AddressAlias transaction
func NewAddressAlias(network NetworkType, action AliasAction, namespaceID types.NamespaceID, address types.Address) *AddressAlias {
	return &AddressAlias{
		BaseTx:      *NewBaseTx(TypeAddressAlias, network),
		NamespaceID: namespaceID,
		Address:     address,
		Action:      action,
	}
}

func (a *AddressAlias) Validate() error {
	if err := a.BaseTx.Validate(); err != nil {
		return err
	}
	if a.NamespaceID == 0 {
		return required("namespaceId")
	}
	if a.Address.IsAlias() {
		return ErrInvalidAddress
	}
	_, err := AliasActionFromRaw(uint8(a.Action))
	return err
}

// MosaicAlias links a namespace to a mosaic id.
type MosaicAlias struct {
	BaseTx

	NamespaceID types.NamespaceID `json:"namespaceId"`
	MosaicID    types.MosaicID    `json:"mosaicId"`
	Action      AliasAction       `json:"aliasAction"`
}

// NewMosaicAlias creates a new MosaicAlias transaction
func NewMosaicAlias(network NetworkType, action AliasAction, namespaceID types.NamespaceID, mosaicID types.MosaicID) *MosaicAlias {
	return &MosaicAlias{
		BaseTx:      *NewBaseTx(TypeMosaicAlias, network),
		NamespaceID: namespaceID,
		MosaicID:    mosaicID,
		Action:      action,
	}
}

func (a *MosaicAlias) Validate() error {
	if err := a.BaseTx.Validate(); err != nil {
		return err
	}
	if a.NamespaceID == 0 {
		return required("namespaceId")
	}
	_, err := AliasActionFromRaw(uint8(a.Action))
	return err
}
