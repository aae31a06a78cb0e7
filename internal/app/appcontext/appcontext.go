package appcontext

const (
	EnvServer Env = iota
	EnvCLI
)

// Env distinguishes the embedding surface the engine is composed into: the product
// backend process, or the diagnostics CLI.
type Env int

type Ctx struct {
	Env Env
}

func Declare(env Env) Ctx {
	return Ctx{
		Env: env,
	}
}
