package sampler

import (
	"go.uber.org/fx"
)

// FXModule provides the Sampler built by New from a sampler.Config.
var FXModule = fx.Module("sampler",
	fx.Provide(New),
)
