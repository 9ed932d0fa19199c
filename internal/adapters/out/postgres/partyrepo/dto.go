// Package partyrepo provides data transfer objects and mapping functions for
// party persistence. Parties are the consignor and consignee rows attached to
// each order; the database assigns their identifiers on insert.
package partyrepo

import (
	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/kernel"
	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/party"
)

// PartyDTO represents the database structure for persisting parties.
type PartyDTO struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Role           string `gorm:"type:varchar(16);index"`
	Name           string `gorm:"type:varchar(120)"`
	Phone          string `gorm:"type:varchar(32)"`
	AddressLine    string `gorm:"type:varchar(255)"`
	City           string `gorm:"type:varchar(80)"`
	PostalCode     string `gorm:"type:varchar(16)"`
	OwnerAccountID *int64 `gorm:"index"`
}

// TableName overrides GORM's default naming convention to use "parties".
func (PartyDTO) TableName() string {
	return "parties"
}

func fromDomain(p *party.Party) PartyDTO {
	var ownerAccountID *int64
	if owner := p.OwnerAccountID(); owner != nil {
		raw := owner.Int64()
		ownerAccountID = &raw
	}

	return PartyDTO{
		ID:             p.ID().Int64(),
		Role:           p.Role().String(),
		Name:           p.Name(),
		Phone:          p.Phone(),
		AddressLine:    p.AddressLine(),
		City:           p.City(),
		PostalCode:     p.PostalCode(),
		OwnerAccountID: ownerAccountID,
	}
}

func toDomain(dto PartyDTO) (*party.Party, error) {
	role, err := party.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	var ownerAccountID *kernel.ID
	if dto.OwnerAccountID != nil {
		id := kernel.ID(*dto.OwnerAccountID)
		ownerAccountID = &id
	}

	fields := party.Fields{
		Name:        dto.Name,
		Phone:       dto.Phone,
		AddressLine: dto.AddressLine,
		City:        dto.City,
		PostalCode:  dto.PostalCode,
	}

	return party.RestoreParty(kernel.ID(dto.ID), fields, role, ownerAccountID)
}
