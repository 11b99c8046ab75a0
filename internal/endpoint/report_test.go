// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package endpoint_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-reporter-api/internal/endpoint"
	"github.com/MKhiriev/go-reporter-api/internal/mock"
	"github.com/MKhiriev/go-reporter-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var reportRequest = endpoint.Request{Method: http.MethodGet, Path: "/api/reporter/v1/application/report"}

func newReportEndpoint(t *testing.T) (*endpoint.Report, *mock.MockPackageInventory, *mock.MockBundleDescriber) {
	t.Helper()

	ctrl := gomock.NewController(t)
	inventory := mock.NewMockPackageInventory(ctrl)
	describer := mock.NewMockBundleDescriber(ctrl)

	return endpoint.NewReport(inventory, describer), inventory, describer
}

func TestReport_Handle_EmptyReport(t *testing.T) {
	e, inventory, describer := newReportEndpoint(t)

	describer.EXPECT().Describe(gomock.Any()).Return(models.Bundle{}, nil)
	inventory.EXPECT().Packages(gomock.Any()).Return(nil, nil)

	resp, err := e.Handle(context.Background(), reportRequest)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(resp.Body, &body))
	assert.Equal(t, map[string]any{
		"applicationId": "0",
		"name":          "",
		"status":        "UNKNOWN",
		"packages":      []any{},
		"repositories":  []any{},
		"tags":          []any{},
	}, body)
}

func TestReport_Handle_PopulatedReport(t *testing.T) {
	e, inventory, describer := newReportEndpoint(t)

	describer.EXPECT().Describe(gomock.Any()).Return(models.Bundle{
		ApplicationID: 12,
		Name:          "shop",
		Status:        models.StatusOK,
		Repositories:  []string{"https://packages.example.com"},
		Tags:          []*models.Tag{models.NewTag(1, "prod")},
	}, nil)
	inventory.EXPECT().Packages(gomock.Any()).Return([]*models.Package{
		models.NewPackage("github.com/rs/zerolog", "v1.34.0", "h1:abc", nil),
	}, nil)

	resp, err := e.Handle(context.Background(), reportRequest)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"applicationId": "12",
		"name": "shop",
		"status": "OK",
		"packages": [
			{"name": "github.com/rs/zerolog", "version": "v1.34.0", "type": "", "sourceReference": "h1:abc", "source": {}}
		],
		"repositories": ["https://packages.example.com"],
		"tags": [{"id": 1, "name": "prod"}]
	}`, string(resp.Body))

	// keys keep declaration order on the wire
	assert.Regexp(t, `^\{"applicationId":.*"name":.*"status":.*"packages":.*"repositories":.*"tags":`, string(resp.Body))
}

func TestReport_Handle_ProviderErrors(t *testing.T) {
	errBoom := errors.New("boom")

	t.Run("describer fails", func(t *testing.T) {
		e, _, describer := newReportEndpoint(t)
		describer.EXPECT().Describe(gomock.Any()).Return(models.Bundle{}, errBoom)

		resp, err := e.Handle(context.Background(), reportRequest)
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, endpoint.ErrDescribingBundle)
		assert.ErrorIs(t, err, errBoom)
	})

	t.Run("inventory fails", func(t *testing.T) {
		e, inventory, describer := newReportEndpoint(t)
		describer.EXPECT().Describe(gomock.Any()).Return(models.Bundle{}, nil)
		inventory.EXPECT().Packages(gomock.Any()).Return(nil, errBoom)

		resp, err := e.Handle(context.Background(), reportRequest)
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, endpoint.ErrReadingInventory)
		assert.ErrorIs(t, err, errBoom)
	})
}

func TestNull(t *testing.T) {
	resp, err := endpoint.Null{}.Handle(context.Background(), reportRequest)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, endpoint.ErrNullEndpoint)

	assert.True(t, endpoint.IsNull(endpoint.Null{}))
	assert.True(t, endpoint.IsNull(nil))
	assert.False(t, endpoint.IsNull(&endpoint.Report{}))
}
