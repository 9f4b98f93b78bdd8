package domain

import "errors"

// ErrDataFormat indicates the PPP dataset is missing or unusable.
var ErrDataFormat = errors.New("invalid PPP dataset")

// ErrCacheMiss indicates that no exchange rate snapshot is cached.
var ErrCacheMiss = errors.New("no cached exchange rates")

// ErrUnknownCountry indicates a country code absent from the catalog.
var ErrUnknownCountry = errors.New("unknown country")
