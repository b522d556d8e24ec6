package router

import (
	"github.com/flavyo560/Controle-de-estoque/internal/config"
	"github.com/flavyo560/Controle-de-estoque/internal/handler"
	"github.com/flavyo560/Controle-de-estoque/internal/middleware"
	"github.com/flavyo560/Controle-de-estoque/internal/repository"
	"github.com/flavyo560/Controle-de-estoque/internal/service"
	"github.com/flavyo560/Controle-de-estoque/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// New monta o grafo de dependências e devolve o engine Gin configurado.
// Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Middleware global (a ordem importa)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Repositórios ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)
	movimentacaoRepo := repository.NewMovimentacaoRepository(db)
	vendaRepo := repository.NewVendaRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	relatorioRepo := repository.NewRelatorioRepository(db)

	// ── Serviços ─────────────────────────────────────────────────────────────
	dispatcher := worker.NewDispatcher(rdb)

	authSvc := service.NewAuthService(usuarioRepo, cfg)
	estoqueSvc := service.NewEstoqueService(produtoRepo, movimentacaoRepo, dispatcher, log.Logger)
	produtoSvc := service.NewProdutoService(produtoRepo, estoqueSvc)
	vendaSvc := service.NewVendaService(vendaRepo, produtoRepo, estoqueSvc, log.Logger)
	clienteSvc := service.NewClienteService(clienteRepo, vendaRepo)
	relatorioSvc := service.NewRelatorioService(relatorioRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	produtosH := handler.NewProdutosHandler(produtoSvc)
	estoqueH := handler.NewEstoqueHandler(estoqueSvc)
	vendasH := handler.NewVendasHandler(vendaSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	relatoriosH := handler.NewRelatoriosHandler(relatorioSvc)

	// ── Rotas ────────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Perfis: vendedor, gerente, admin
		todos := middleware.RequirePerfil("vendedor", "gerente", "admin")
		gestao := middleware.RequirePerfil("gerente", "admin")

		v1.POST("/vendas", todos, vendasH.Finalizar)
		v1.GET("/vendas", todos, vendasH.Listar)
		v1.GET("/vendas/:id", todos, vendasH.Buscar)
		v1.GET("/vendas/:id/comprovante", todos, vendasH.Comprovante)
		// Cancelamento exige gerência
		v1.DELETE("/vendas/:id", gestao, vendasH.Cancelar)

		v1.GET("/produtos", todos, produtosH.Listar)
		v1.GET("/produtos/:id", todos, produtosH.BuscarPorID)
		v1.GET("/produtos/codigo/:codigo", todos, produtosH.BuscarPorCodigoBarras)
		prods := v1.Group("/produtos", gestao)
		{
			prods.POST("", produtosH.Criar)
			prods.PUT("/:id", produtosH.Atualizar)
			prods.DELETE("/:id", produtosH.Remover)
		}

		estoque := v1.Group("/estoque")
		{
			estoque.POST("/movimentacoes", gestao, estoqueH.RegistrarMovimentacao)
			estoque.GET("/movimentacoes", todos, estoqueH.ListarMovimentacoes)
			estoque.GET("/alertas", todos, estoqueH.Alertas)
			estoque.GET("/valor-total", gestao, estoqueH.ValorTotal)
			estoque.GET("/sem-movimentacao", gestao, estoqueH.SemMovimentacao)
		}

		clientes := v1.Group("/clientes")
		{
			clientes.POST("", todos, clientesH.Criar)
			clientes.GET("", todos, clientesH.Buscar)
			clientes.GET("/:id", todos, clientesH.BuscarPorID)
			clientes.PUT("/:id", todos, clientesH.Atualizar)
			clientes.GET("/:id/historico", todos, clientesH.Historico)
		}

		relatorios := v1.Group("/relatorios", gestao)
		{
			relatorios.GET("/vendas", relatoriosH.ResumoVendas)
			relatorios.GET("/produtos-mais-vendidos", relatoriosH.ProdutosMaisVendidos)
			relatorios.GET("/vendas-por-vendedor", relatoriosH.VendasPorVendedor)
		}
	}

	// Swagger UI só fora de produção
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
