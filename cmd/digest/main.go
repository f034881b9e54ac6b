package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lokvist/digestkit/pkg/common/constant"
	"github.com/lokvist/digestkit/pkg/common/logs"
	"github.com/lokvist/digestkit/pkg/config"
	"github.com/lokvist/digestkit/pkg/hash"
)

var (
	configFile  string
	algoName    string
	keyHex      string
	double      bool
	rawOutput   bool
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "Path to configuration file (optional)")
	flag.StringVar(&algoName, "algo", "", "Digest algorithm: BLAKE3, SHA256, BLAKE3_MAC, HMAC_SHA256")
	flag.StringVar(&keyHex, "key", "", "Hex encoded key for keyed algorithms")
	flag.BoolVar(&double, "double", false, "Hash the digest a second time")
	flag.BoolVar(&rawOutput, "raw", false, "Write raw digest bytes instead of hex")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Printf("digest %s\n", constant.VERSION.String())
		return
	}

	rawConfig := loadConfig()
	applyFlagOverrides(rawConfig)

	if err := logs.SetConfig(rawConfig.ToLogsConfig()); err != nil {
		logs.Fatal("Failed to setup logger: %v", err)
	}

	key, err := decodeKey(rawConfig)
	if err != nil {
		logs.Fatal("Invalid key: %v", err)
	}

	if rawConfig.Double && rawConfig.Algorithm.Keyed() {
		logs.Fatal("Double hashing is only defined for the unkeyed algorithms")
	}

	args := flag.Args()
	if len(args) == 0 {
		digest, err := hashReader(rawConfig, key, os.Stdin)
		if err != nil {
			logs.Fatal("Failed to hash stdin: %v", err)
		}
		printDigest(rawConfig, digest, "-")
		return
	}

	// 多个文件复用同一个hasher，逐个Reset
	hasher, err := newHasher(rawConfig.Algorithm, key)
	if err != nil {
		logs.Fatal("Failed to create hasher: %v", err)
	}

	buf := make([]byte, rawConfig.BufferSize)
	for _, arg := range args {
		f, err := os.Open(arg)
		if err != nil {
			logs.Fatal("Failed to open %s: %v", arg, err)
		}

		if _, err := io.CopyBuffer(hasher, f, buf); err != nil {
			f.Close()
			logs.Fatal("Failed to read %s: %v", arg, err)
		}
		f.Close()

		printDigest(rawConfig, finishDigest(rawConfig, hasher), filepath.Clean(arg))
		hasher.Reset()
	}
}

func loadConfig() *config.DigestConfig {
	if configFile == "" {
		return config.DefaultDigestConfig()
	}

	configPath, err := filepath.Abs(configFile)
	if err != nil {
		logs.Fatal("Failed to resolve config path: %v", err)
	}
	config.InitInstanceConfig(configPath)

	rawConfig, err := config.GetRawConfig()
	if err != nil {
		logs.Fatal("Failed to load config: %v", err)
	}
	return rawConfig
}

func applyFlagOverrides(rawConfig *config.DigestConfig) {
	if algoName != "" {
		algo, err := config.Algorithm(0).FromString(algoName)
		if err != nil {
			logs.Fatal("Unknown algorithm %q", algoName)
		}
		rawConfig.Algorithm = algo.(config.Algorithm)
	}
	if keyHex != "" {
		rawConfig.Key = &keyHex
	}
	if double {
		rawConfig.Double = true
	}
	if rawOutput {
		rawConfig.Output = config.RAW
	}
}

func decodeKey(rawConfig *config.DigestConfig) ([]byte, error) {
	if !rawConfig.Algorithm.Keyed() {
		return nil, nil
	}
	if rawConfig.Key == nil {
		return nil, fmt.Errorf("algorithm %s requires a key", rawConfig.Algorithm)
	}
	return hex.DecodeString(*rawConfig.Key)
}

func newHasher(algo config.Algorithm, key []byte) (hash.StreamHasher, error) {
	switch algo {
	case config.BLAKE3:
		return hash.NewBlake3Hasher(), nil
	case config.SHA256:
		return hash.NewSHA256Hasher(), nil
	case config.BLAKE3_MAC:
		return hash.NewKeyedBlake3Hasher(key)
	case config.HMAC_SHA256:
		return hash.NewHMACSHA256Hasher(key), nil
	default:
		return nil, fmt.Errorf("unsupported algorithm %s", algo)
	}
}

func hashReader(rawConfig *config.DigestConfig, key []byte, r io.Reader) ([]byte, error) {
	hasher, err := newHasher(rawConfig.Algorithm, key)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, rawConfig.BufferSize)
	if _, err := io.CopyBuffer(hasher, r, buf); err != nil {
		return nil, err
	}

	return finishDigest(rawConfig, hasher), nil
}

func finishDigest(rawConfig *config.DigestConfig, hasher hash.StreamHasher) []byte {
	digest := hasher.Finalize()
	if !rawConfig.Double {
		return digest
	}

	switch rawConfig.Algorithm {
	case config.BLAKE3:
		return hash.Blake3(digest)
	default:
		return hash.SHA256(digest)
	}
}

func printDigest(rawConfig *config.DigestConfig, digest []byte, name string) {
	if rawConfig.Output == config.RAW {
		os.Stdout.Write(digest)
		return
	}
	fmt.Printf("%s  %s\n", hex.EncodeToString(digest), name)
}
