/*
Copyright 2025 the Dogs API Tests Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/truenvy/dogs-api-api-tests-pet-project/pkg/config"
	"github.com/truenvy/dogs-api-api-tests-pet-project/pkg/dogs"
	"github.com/truenvy/dogs-api-api-tests-pet-project/pkg/smoke"

	cr "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

func main() {
	configuration, err := config.Load(".env")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	configuration.AddFlags(pflag.CommandLine)

	var limit int

	pflag.IntVar(&limit, "limit", 0, "Number of facts to request, 0 picks one at random.")

	zapOptions := zap.Options{}

	goflags := flag.NewFlagSet("logging", flag.ExitOnError)
	zapOptions.BindFlags(goflags)
	pflag.CommandLine.AddGoFlagSet(goflags)

	pflag.Parse()

	log.SetLogger(zap.New(zap.UseFlagOptions(&zapOptions)))

	logger := log.Log.WithName("init")

	if err := configuration.Validate(); err != nil {
		logger.Error(err, "invalid configuration")
		os.Exit(1)
	}

	provider := config.NewProvider(configuration)

	if limit == 0 {
		limit = provider.Faker().Number(1, 4)
	}

	logger.Info("smoke checks starting", "baseURI", configuration.BaseURI, "limit", limit)

	client, err := dogs.New(configuration)
	if err != nil {
		logger.Error(err, "failed to create client")
		os.Exit(1)
	}

	ctx := log.IntoContext(cr.SetupSignalHandler(), log.Log.WithName("smoke"))

	if err := smoke.New(client, limit).Run(ctx); err != nil {
		logger.Error(err, "smoke checks failed")
		os.Exit(1)
	}

	logger.Info("smoke checks passed")
}
