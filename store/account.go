package store

import (
	"time"

	"github.com/helpmate/helpmate-api/schema"
)

// CreateAccount registers an account together with its marketplace profile.
// The mongodb discovery profile is created alongside so the account becomes
// visible to geospatial queries immediately.
func (s *MarketStore) CreateAccount(accountNumber, encPubKey string, isSeeker, isHelper bool, metadata map[string]interface{}) (*schema.Account, error) {
	a := schema.Account{
		AccountNumber: accountNumber,
		EncPubKey:     encPubKey,
		Profile: schema.AccountProfile{
			AccountNumber: accountNumber,
			IsSeeker:      isSeeker,
			IsHelper:      isHelper,
			State: schema.ActivityState{
				LastActiveTime: time.Now(),
			},
			Metadata: schema.AccountMetadata(metadata),
		},
	}

	if err := s.ormDB.Create(&a).Error; err != nil {
		return nil, err
	}

	if err := s.mongo.CreateProfile(schema.Profile{
		ID:            a.Profile.ID.String(),
		AccountNumber: accountNumber,
		IsSeeker:      isSeeker,
		IsHelper:      isHelper,
	}); err != nil {
		return nil, err
	}

	return &a, nil
}

// GetAccount returns an account instance of a given account number
func (s *MarketStore) GetAccount(accountNumber string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Preload("Profile").Where("account_number = ?", accountNumber).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateAccountMetadata is to update metadata for a specific account
func (s *MarketStore) UpdateAccountMetadata(accountNumber string, metadata map[string]interface{}) error {
	var a schema.Account
	if err := s.ormDB.Preload("Profile").Where("account_number = ?", accountNumber).First(&a).Error; err != nil {
		return err
	}

	for k, v := range metadata {
		a.Profile.Metadata[k] = v
	}

	return s.ormDB.Save(&a.Profile).Error
}

// UpdateAccountGeoPosition records the latest position of an account in both
// stores; the mongodb copy feeds nearest-helper discovery.
func (s *MarketStore) UpdateAccountGeoPosition(accountNumber string, latitude, longitude float64) error {
	var a schema.Account
	if err := s.ormDB.Preload("Profile").Where("account_number = ?", accountNumber).First(&a).Error; err != nil {
		return err
	}

	a.Profile.State.LastLocation = &schema.Location{
		Latitude:  latitude,
		Longitude: longitude,
	}

	if err := s.ormDB.Save(&a.Profile).Error; err != nil {
		return err
	}

	return s.mongo.UpdateProfileGeoPosition(accountNumber, schema.Location{
		Latitude:  latitude,
		Longitude: longitude,
	})
}
