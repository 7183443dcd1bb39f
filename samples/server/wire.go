//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"
)

func live(ctx context.Context) (*Server, func(), error) {
	panic(wire.Build(Live))
}
