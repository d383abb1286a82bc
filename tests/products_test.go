package tests

import (
	"context"
	"testing"

	"pricewatch/internal/dto"
	"pricewatch/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct_DuplicateName(t *testing.T) {
	repo := newStubProductRepo()
	svc := service.NewProductService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreateProductRequest{Name: "Smirnoff Ice"}, 1)
	require.NoError(t, err)

	_, err = svc.Create(ctx, dto.CreateProductRequest{Name: "Smirnoff Ice"}, 2)
	assert.ErrorIs(t, err, service.ErrConflict)
}

func TestUpdateProduct(t *testing.T) {
	repo := newStubProductRepo()
	svc := service.NewProductService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateProductRequest{Name: "Vodka Orloff"}, 1)
	require.NoError(t, err)

	category := "destilados"
	updated, err := svc.Update(ctx, created.ID, dto.UpdateProductRequest{
		Name: "Vodka Orloff 1L", Category: &category,
	})
	require.NoError(t, err)
	assert.Equal(t, "Vodka Orloff 1L", updated.Name)
	require.NotNil(t, updated.Category)
	assert.Equal(t, "destilados", *updated.Category)

	_, err = svc.Update(ctx, 999, dto.UpdateProductRequest{Name: "X"})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	repo := newStubProductRepo()
	svc := service.NewProductService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateProductRequest{Name: "Gin Rocks"}, 1)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID), service.ErrNotFound)
}

func TestListProducts_DegradesToEmpty(t *testing.T) {
	repo := newStubProductRepo()
	svc := service.NewProductService(repo)

	repo.fail = true
	out := svc.List(context.Background())
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
