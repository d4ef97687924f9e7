// Package cache caché de lectura de respuestas del catálogo sobre Redis.
package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	appcatalog "github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
)

var _ appcatalog.ResultCache = (*FilterCache)(nil)

// DefaultTTL listas de productos: vida corta, el catálogo cambia con frecuencia.
const DefaultTTL = 2 * time.Minute

const keyPrefix = "catalog:filter:"

// FilterCache guarda la respuesta JSON completa bajo un hash de la consulta normalizada.
// No se invalida explícitamente: las entradas expiran por TTL.
type FilterCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFilterCache ttl <= 0 usa DefaultTTL.
func NewFilterCache(client *redis.Client, ttl time.Duration) *FilterCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &FilterCache{client: client, ttl: ttl}
}

// Key clave determinista para una consulta ya normalizada. Dos consultas equivalentes
// (mismo contenido tras normalizar) comparten clave.
func Key(q catalog.Query) string {
	data, _ := json.Marshal(q)
	sum := md5.Sum(data)
	return keyPrefix + hex.EncodeToString(sum[:])
}

// Get devuelve ok=false si no hay entrada. Cada llamada decodifica una copia nueva.
func (c *FilterCache) Get(ctx context.Context, q catalog.Query) (*dto.FilterProductsResponse, bool, error) {
	val, err := c.client.Get(ctx, Key(q)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache.Get: %w", err)
	}
	var resp dto.FilterProductsResponse
	if err := json.Unmarshal(val, &resp); err != nil {
		return nil, false, fmt.Errorf("cache.Get decode: %w", err)
	}
	return &resp, true, nil
}

// Set guarda resp con el TTL configurado.
func (c *FilterCache) Set(ctx context.Context, q catalog.Query, resp *dto.FilterProductsResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("cache.Set encode: %w", err)
	}
	if err := c.client.Set(ctx, Key(q), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache.Set: %w", err)
	}
	return nil
}

// NewClient cliente Redis con verificación de conectividad.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}
