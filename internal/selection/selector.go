package selection

import (
	"go.uber.org/zap"

	"github.com/erauner12/homelab-renovate/internal/catalog"
)

const (
	overrideAppliedMessageConstant     = "repository override applied"
	selectAllAppliedMessageConstant    = "processing all repositories"
	nonPrimaryBranchMessageConstant    = "non-primary branch, testing the self-test repository only"
	primaryBranchSubsetMessageConstant = "primary branch, processing shuffled subset"
	logFieldPolicyConstant             = "policy"
	logFieldRepositoriesConstant       = "repositories"
	logFieldBranchConstant             = "branch"
	logFieldSelectedCountConstant      = "selected_count"
	logFieldTotalCountConstant         = "total_count"
)

// Policy names the rule that produced a selection.
type Policy string

// Selection policies in priority order.
const (
	PolicyOverride         Policy = "override"
	PolicySelectAll        Policy = "select_all"
	PolicyNonPrimaryBranch Policy = "non_primary_branch"
	PolicyPrimaryBranch    Policy = "primary_branch"
)

// Result is the immutable outcome of a selection.
type Result struct {
	Repositories []catalog.RepositoryIdentifier
	Policy       Policy
	BranchName   string
}

// Selector chooses the repositories processed during a run.
type Selector struct {
	configuration Configuration
	randomSource  RandomSource
	logger        *zap.Logger
}

// NewSelector constructs a Selector. A nil random source draws a fresh unseeded one.
func NewSelector(configuration Configuration, randomSource RandomSource, logger *zap.Logger) *Selector {
	if randomSource == nil {
		randomSource = NewRandomSource()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Selector{
		configuration: configuration.Sanitize(),
		randomSource:  randomSource,
		logger:        logger,
	}
}

// Select applies the first matching policy: override, select-all, non-primary branch, primary branch.
func (selector *Selector) Select(repositoryCatalog catalog.Catalog, selectionContext Context) Result {
	branchName := selectionContext.BranchName
	if len(branchName) == 0 {
		branchName = selector.configuration.DefaultBranch
	}

	if selectionContext.HasOverride() {
		repositories := selectionContext.OverrideRepositories()
		selector.logger.Info(
			overrideAppliedMessageConstant,
			zap.String(logFieldPolicyConstant, string(PolicyOverride)),
			zap.Strings(logFieldRepositoriesConstant, catalog.Strings(repositories)),
		)
		return Result{Repositories: repositories, Policy: PolicyOverride, BranchName: branchName}
	}

	if selectionContext.SelectAllRequested() {
		selector.logger.Info(
			selectAllAppliedMessageConstant,
			zap.String(logFieldPolicyConstant, string(PolicySelectAll)),
			zap.Int(logFieldTotalCountConstant, repositoryCatalog.Len()),
		)
		return Result{Repositories: repositoryCatalog.Repositories(), Policy: PolicySelectAll, BranchName: branchName}
	}

	if !selector.configuration.IsPrimaryBranch(branchName) {
		selfTestRepository := repositoryCatalog.SelfTestRepository()
		selector.logger.Info(
			nonPrimaryBranchMessageConstant,
			zap.String(logFieldPolicyConstant, string(PolicyNonPrimaryBranch)),
			zap.String(logFieldBranchConstant, branchName),
			zap.Strings(logFieldRepositoriesConstant, []string{selfTestRepository.String()}),
		)
		return Result{
			Repositories: []catalog.RepositoryIdentifier{selfTestRepository},
			Policy:       PolicyNonPrimaryBranch,
			BranchName:   branchName,
		}
	}

	shuffledRepositories := repositoryCatalog.Repositories()
	Shuffle(shuffledRepositories, selector.randomSource)

	batchSize := BatchSize(len(shuffledRepositories), selector.configuration.MinimumBatchSize)
	selectedRepositories := shuffledRepositories[:batchSize:batchSize]

	selector.logger.Info(
		primaryBranchSubsetMessageConstant,
		zap.String(logFieldPolicyConstant, string(PolicyPrimaryBranch)),
		zap.String(logFieldBranchConstant, branchName),
		zap.Int(logFieldSelectedCountConstant, len(selectedRepositories)),
		zap.Int(logFieldTotalCountConstant, repositoryCatalog.Len()),
		zap.Strings(logFieldRepositoriesConstant, catalog.Strings(selectedRepositories)),
	)

	return Result{Repositories: selectedRepositories, Policy: PolicyPrimaryBranch, BranchName: branchName}
}

// BatchSize returns max(minimum, ceil(total/2)) capped at total.
func BatchSize(total int, minimum int) int {
	if total <= 0 {
		return 0
	}
	halfRoundedUp := (total + 1) / 2
	batchSize := max(minimum, halfRoundedUp)
	return min(batchSize, total)
}
