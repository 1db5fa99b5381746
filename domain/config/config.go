package config

import (
	"crypto/ed25519"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/viper"
	"github.com/tonkeeper/tongo/wallet"
)

var (
	ErrorInvalidProgramId = fmt.Errorf("invalid program id")
	ErrorInvalidSigner    = fmt.Errorf("invalid signer address")
	ErrorInvalidThreshold = fmt.Errorf("threshold must be between 1 and the number of signers")

	ErrorNoSignerKey          = fmt.Errorf("one of mnemonic, mnemonic_url or keypair_path must be defined")
	ErrorSignerKeyConflict    = fmt.Errorf("only one of mnemonic, mnemonic_url or keypair_path must be defined")
	ErrorReadingMnemonicFile  = fmt.Errorf("error in reading mnemonic file")
	ErrorReadingKeypairFile   = fmt.Errorf("error in reading keypair file")
	ErrorInvalidCollectPeriod = fmt.Errorf("invalid time interval for collect process")
)

var (
	TrailingSlashRE = regexp.MustCompile("/+$")
)

const (
	DefaultMetricsAddress = ":9090"
	DefaultMaxRetry       = 5
)

var (
	dbUri string

	programId solana.PublicKey
	signers   []solana.PublicKey
	threshold uint8

	mnemonic         string
	mnemonic_url     string
	keypairPath      string
	signerPrivateKey solana.PrivateKey

	metricsAddress  string
	collectInterval time.Duration
	maxRetry        int
)

func ReadConfig(filePath string) {
	viper.SetConfigFile(filePath)

	viper.AutomaticEnv()

	viper.SetDefault("metrics_address", DefaultMetricsAddress)
	viper.SetDefault("collect_interval", "30s")
	viper.SetDefault("max_retry", DefaultMaxRetry)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("⚠️ Failed reading config file: %v\n", err.Error())
	}

	err := initializeVariables()
	if err != nil {
		log.Fatalf("Configuration error - %v\n", err.Error())
	}
}

// This method processes the configuration parameters and keeps the processed values
// in some variables for later accesses rapidly.
func initializeVariables() error {
	var err error

	// Database stuff
	dbUri = TrailingSlashRE.ReplaceAllString(viper.GetString("service_db_uri"), "")

	// Program stuff
	programId, err = solana.PublicKeyFromBase58(strings.TrimSpace(viper.GetString("program_id")))
	if err != nil {
		return ErrorInvalidProgramId
	}

	signers, err = parseSigners(viper.GetStringSlice("signers"))
	if err != nil {
		return err
	}

	value := viper.GetInt("threshold")
	if value < 1 || value > len(signers) {
		return ErrorInvalidThreshold
	}
	threshold = uint8(value)

	// Signer key stuff
	mnemonic = strings.TrimSpace(viper.GetString("mnemonic"))
	mnemonic_url = strings.TrimSpace(viper.GetString("mnemonic_url"))
	keypairPath = strings.TrimSpace(viper.GetString("keypair_path"))

	signerPrivateKey, err = loadSignerKey()
	if err != nil {
		return err
	}

	//---------------------------------------------------------------
	// metrics
	metricsAddress = strings.TrimSpace(viper.GetString("metrics_address"))

	collectInterval, err = time.ParseDuration(viper.GetString("collect_interval"))
	if err != nil {
		return ErrorInvalidCollectPeriod
	}

	maxRetry = viper.GetInt("max_retry")

	return nil
}

func parseSigners(values []string) ([]solana.PublicKey, error) {
	result := make([]solana.PublicKey, 0, len(values))
	for _, value := range values {
		key, err := solana.PublicKeyFromBase58(strings.TrimSpace(value))
		if err != nil {
			log.Printf("Failed to parse signer %v - %v\n", value, err.Error())
			return nil, ErrorInvalidSigner
		}
		result = append(result, key)
	}
	return result, nil
}

func loadSignerKey() (solana.PrivateKey, error) {
	defined := 0
	for _, v := range []string{mnemonic, mnemonic_url, keypairPath} {
		if v != "" {
			defined++
		}
	}
	if defined == 0 {
		return nil, ErrorNoSignerKey
	}
	if defined > 1 {
		return nil, ErrorSignerKeyConflict
	}

	if keypairPath != "" {
		key, err := solana.PrivateKeyFromSolanaKeygenFile(keypairPath)
		if err != nil {
			log.Printf("Failed to read keypair file - %v\n", err.Error())
			return nil, ErrorReadingKeypairFile
		}
		return key, nil
	}

	seed := mnemonic
	if mnemonic_url != "" {
		var err error
		seed, err = readMnemonicFile(mnemonic_url)
		if err != nil {
			return nil, ErrorReadingMnemonicFile
		}
	}

	privateKey, err := wallet.SeedToPrivateKey(seed)
	if err != nil {
		log.Printf("Failed to get private key - %v\n", err.Error())
		return nil, err
	}

	return solana.PrivateKey(ed25519.PrivateKey(privateKey)), nil
}

func readMnemonicFile(filePath string) (string, error) {

	fileContent, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("Failed to read mmnemonic file - %v\n", err.Error())
		return "", err
	}

	return strings.TrimSpace(string(fileContent)), nil
}

//-------------------------------------------------------------------
// Normal configuration values

func GetDbUri() string {
	return dbUri
}

func GetProgramId() solana.PublicKey {
	return programId
}

func GetSigners() []solana.PublicKey {
	return signers
}

func GetThreshold() uint8 {
	return threshold
}

func GetSignerPrivateKey() solana.PrivateKey {
	return signerPrivateKey
}

func GetMetricsAddress() string {
	return metricsAddress
}

func GetCollectInterval() time.Duration {
	return collectInterval
}

func GetMaxRetry() int {
	return maxRetry
}
