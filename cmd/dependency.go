package cmd

import (
	"context"
	"database/sql"
	"log"
	"time"

	"minter/domain"
	"minter/domain/config"
	"minter/infrastructure/dbhandler"
	"minter/interface/repository"
	"minter/usecase"
)

func defaultDependencyInject() {
	if useMemory {
		accountStore = repository.NewMemoryAccounts()
		log.Printf("⚠️ Accounts are kept in memory and are lost on exit.")
	} else {
		var err error
		dbPool, err = sql.Open("postgres", config.GetDbUri())
		if err != nil {
			log.Fatal(err)
		}
		dbPool.SetMaxOpenConns(20)
		dbPool.SetMaxIdleConns(5)
		dbPool.SetConnMaxIdleTime(1 * time.Minute)
		dbPool.SetConnMaxLifetime(4 * time.Hour)

		dbHandler = dbhandler.DBHandler{DB: dbPool}
		accountStore = repository.NewAccountRepository(dbHandler, config.GetMaxRetry())
	}

	programId := config.GetProgramId()
	multisigInteractor = usecase.NewMultisigInteractor(accountStore, programId)
	mintInteractor = usecase.NewMintMasterAgentInteractor(accountStore, usecase.SystemClock{}, usecase.NewMetadataProgram(), programId)
	statisticInteractor = usecase.NewStatisticInteractor(accountStore, programId)

	if useMemory {
		// a fresh in-memory store starts without the multisig account
		if _, err := multisigInteractor.Setup(context.Background(), config.GetSigners(), config.GetThreshold()); err != nil {
			log.Fatalf("Unable to set up in-memory multisig - %v\n", err.Error())
		}
	}
}

var dbPool *sql.DB
var dbHandler dbhandler.DBHandler
var accountStore domain.AccountStore
var multisigInteractor *usecase.MultisigInteractor
var mintInteractor *usecase.MintMasterAgentInteractor
var statisticInteractor *usecase.StatisticInteractor
