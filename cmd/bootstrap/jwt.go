package bootstrap

import (
	"parkshare/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		jwt.NewService,
	),
)
