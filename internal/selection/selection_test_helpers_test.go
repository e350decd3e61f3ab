package selection_test

import (
	"fmt"

	"github.com/erauner12/homelab-renovate/internal/catalog"
)

const (
	testSelfTestRepositoryConstant = "erauner12/homelab-renovate"
	testGeneratedRepositoryPattern = "owner/repository-%02d"
)

var homelabRepositories = []catalog.RepositoryIdentifier{
	"erauner12/homelab-k8s",
	"erauner12/omni",
	"erauner12/infrastructure",
	"erauner12/homelab-smoke",
	"erauner12/homelab-validation-image",
	"erauner12/homelab-go-utils",
	"erauner12/homelab-jenkins-library",
	"erauner12/homelab-shadow",
	"erauner12/homelab-manifest-service",
	"erauner12/backstage-plugins",
	"erauner12/dotfiles",
	"erauner12/taskfiles",
	"erauner12/todoist-mcp",
	testSelfTestRepositoryConstant,
}

func homelabCatalog() catalog.Catalog {
	return catalog.New(homelabRepositories, testSelfTestRepositoryConstant)
}

func generatedCatalog(size int) catalog.Catalog {
	repositories := make([]catalog.RepositoryIdentifier, 0, size)
	for repositoryIndex := 0; repositoryIndex < size; repositoryIndex++ {
		repositories = append(repositories, catalog.RepositoryIdentifier(fmt.Sprintf(testGeneratedRepositoryPattern, repositoryIndex)))
	}
	selfTestRepository := catalog.RepositoryIdentifier(testSelfTestRepositoryConstant)
	if size > 0 {
		selfTestRepository = repositories[size-1]
	}
	return catalog.New(repositories, selfTestRepository)
}
