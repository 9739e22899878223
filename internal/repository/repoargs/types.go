package repoargs

type RepositoryName string

const (
	UserRepoName               RepositoryName = "user"
	KYCRepoName                RepositoryName = "kyc"
	BalanceRepoName            RepositoryName = "balance"
	BalanceTransactionRepoName RepositoryName = "balance_transaction"
	OrderRepoName              RepositoryName = "order"
	PortfolioRepoName          RepositoryName = "portfolio"
)
