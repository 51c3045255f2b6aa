package fx

import "go.uber.org/fx"

// AppModule reúne os módulos da aplicação na ordem de inicialização:
// configuração, banco, domínio, middlewares, rotas e servidor HTTP.
var AppModule = fx.Options(
	ConfigModule,
	InfrastructureModule,
	DomainModule,
	MiddlewareModule,
	RoutesModule,
	ServerModule,
)
