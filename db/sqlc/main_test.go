package db

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/TJurijs/5esrd-api/util"
	"github.com/jackc/pgx/v5/pgxpool"
)

// testStore is nil when no database is configured; integration tests skip then.
var testStore Store

func TestMain(m *testing.M) {
	config, err := util.LoadConfig("../../")
	if err != nil {
		log.Fatal("Cannot read the config: ", err)
	}

	if config.DBSource != "" {
		connPool, err := pgxpool.New(context.Background(), config.DBSource)
		if err != nil {
			log.Fatal("Cannot connect to the database: ", err)
		}

		testStore = NewStore(connPool)
	}

	os.Exit(m.Run())
}

func requireDB(t *testing.T) {
	t.Helper()

	if testStore == nil || testing.Short() {
		t.Skip("DB_SOURCE is not set")
	}
}
