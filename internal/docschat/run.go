package docschat

import (
	"github.com/moralisweb3/docschat/internal/docschat/config"
)

func Run(cfg *config.Config) error {
	server, err := createAPIServer(cfg)
	if err != nil {
		return err
	}

	return server.PrepareRun().Run()
}
