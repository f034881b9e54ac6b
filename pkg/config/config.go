package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/lokvist/digestkit/pkg/common"
	"github.com/lokvist/digestkit/pkg/common/logs"
	"github.com/lokvist/digestkit/pkg/common/utils"
	"github.com/spf13/viper"
)

// Algorithm 摘要算法类型
type Algorithm int16

const (
	BLAKE3      = Algorithm(1)
	SHA256      = Algorithm(2)
	BLAKE3_MAC  = Algorithm(3)
	HMAC_SHA256 = Algorithm(4)
)

var algorithmNames = []string{"BLAKE3", "SHA256", "BLAKE3_MAC", "HMAC_SHA256"}

func (a Algorithm) String() string {
	aIdx := int(a) - 1
	if len(algorithmNames) <= aIdx || aIdx < 0 {
		return "UNKNOWN"
	}
	return algorithmNames[aIdx]
}

func (a Algorithm) FromString(s string) (common.Enum, error) {
	aName := strings.ToUpper(s)
	for idx, currAlgorithmName := range algorithmNames {
		if strings.Compare(currAlgorithmName, aName) == 0 {
			return Algorithm(idx + 1), nil
		}
	}

	return Algorithm(0), fmt.Errorf("invalid algorithm")
}

// Keyed 算法是否需要密钥
func (a Algorithm) Keyed() bool {
	return a == BLAKE3_MAC || a == HMAC_SHA256
}

// OutputMode 摘要输出形式
type OutputMode int16

const (
	HEX = OutputMode(1)
	RAW = OutputMode(2)
)

var outputModeNames = []string{"HEX", "RAW"}

func (om OutputMode) String() string {
	omIdx := int(om) - 1
	if len(outputModeNames) <= omIdx || omIdx < 0 {
		return "UNKNOWN"
	}
	return outputModeNames[omIdx]
}

func (om OutputMode) FromString(s string) (common.Enum, error) {
	omName := strings.ToUpper(s)
	for idx, currOutputModeName := range outputModeNames {
		if strings.Compare(currOutputModeName, omName) == 0 {
			return OutputMode(idx + 1), nil
		}
	}

	return OutputMode(0), fmt.Errorf("invalid output mode")
}

type LogMode int16

const (
	STDOUT = LogMode(1)
	FILE   = LogMode(2)
	MIX    = LogMode(3)
)

var logModeNames = []string{"STDOUT", "FILE", "MIX"}

func (lm LogMode) String() string {
	lmIdx := int(lm) - 1
	if len(logModeNames) <= lmIdx || lmIdx < 0 {
		return "UNKNOWN"
	}
	return logModeNames[lmIdx]
}

func (lm LogMode) FromString(s string) (common.Enum, error) {
	lmName := strings.ToUpper(s)
	for idx, currLogModeName := range logModeNames {
		if strings.Compare(lmName, currLogModeName) == 0 {
			return LogMode(idx + 1), nil
		}
	}

	return LogMode(0), fmt.Errorf("invalid log mode")
}

type Config interface {
	ReadConfig(input map[string]any) (Config, error)
	SaveConfig() map[string]any
}

type LogConfig struct {
	Mode     LogMode       `json:"mode"`
	Level    logs.LogLevel `json:"level"`
	FilePath *string       `json:"file_path,omitempty"`
}

func (lc *LogConfig) ReadConfig(input map[string]any) (Config, error) {
	var err error

	lc.Mode, err = convertEnumParam[LogMode](input, "mode")
	if err != nil {
		logs.Error("LogConfig read mode param err, err: %v", err)
		return nil, err
	}

	lc.Level, err = convertEnumParam[logs.LogLevel](input, "level")
	if err != nil {
		logs.Error("LogConfig read level param err, err: %v", err)
		return nil, err
	}

	// file_path仅在FILE或MIX模式下必填
	if lc.Mode == FILE || lc.Mode == MIX {
		var filePath string
		filePath, err = getParam[string](input, "file_path")
		if err != nil {
			logs.Error("LogConfig read file_path param err, err: %v", err)
			return nil, err
		}
		lc.FilePath = &filePath
	}

	return lc, nil
}

func (lc *LogConfig) SaveConfig() map[string]any {
	logOutput := map[string]any{
		"mode":  lc.Mode.String(),
		"level": lc.Level.String(),
	}

	if lc.FilePath != nil {
		logOutput["file_path"] = *lc.FilePath
	}

	return logOutput
}

// DigestConfig digest tool config
// Algorithm selects the digest family, Key is required (hex form) only
// for the keyed variants. BufferSize is the read buffer in bytes.
type DigestConfig struct {
	Algorithm  Algorithm  `json:"algorithm"`
	Output     OutputMode `json:"output"`
	Key        *string    `json:"key,omitempty"` // hex
	Double     bool       `json:"double"`
	BufferSize int64      `json:"buffer_size"` // Bytes
	Log        *LogConfig `json:"log"`
}

const defaultBufferSize = int64(32 * 1024)

func (dc *DigestConfig) ReadConfig(input map[string]any) (Config, error) {
	var err error

	dc.Algorithm, err = convertEnumParam[Algorithm](input, "algorithm")
	if err != nil {
		logs.Error("DigestConfig read algorithm param err, err: %v", err)
		return nil, err
	}

	dc.Output, err = convertEnumParam[OutputMode](input, "output")
	if err != nil {
		logs.Error("DigestConfig read output param err, err: %v", err)
		return nil, err
	}

	var key string
	if key, err = getParam[string](input, "key"); err == nil {
		dc.Key = &key
	} else if dc.Algorithm.Keyed() {
		err = fmt.Errorf("algorithm %s requires a key: %v", dc.Algorithm, err)
		logs.Error("%s", err.Error())
		return nil, err
	}

	dc.Double, _ = getParam[bool](input, "double")

	dc.BufferSize, err = getParam[int64](input, "buffer_size")
	if err != nil || dc.BufferSize <= 0 {
		dc.BufferSize = defaultBufferSize
	}

	rawLog, err := getParam[map[string]any](input, "log")
	if err != nil {
		logs.Error("DigestConfig read log param err, err: %v", err)
		return nil, err
	}

	logConf := new(LogConfig)
	if _, err = logConf.ReadConfig(rawLog); err != nil {
		return nil, err
	}
	dc.Log = logConf

	return dc, nil
}

func (dc *DigestConfig) SaveConfig() map[string]any {
	output := map[string]any{
		"algorithm":   dc.Algorithm.String(),
		"output":      dc.Output.String(),
		"double":      dc.Double,
		"buffer_size": dc.BufferSize,
	}

	if dc.Key != nil {
		output["key"] = *dc.Key
	}
	if dc.Log != nil {
		output["log"] = dc.Log.SaveConfig()
	}

	return output
}

// DefaultDigestConfig 未提供配置文件时的缺省配置
func DefaultDigestConfig() *DigestConfig {
	return &DigestConfig{
		Algorithm:  SHA256,
		Output:     HEX,
		BufferSize: defaultBufferSize,
		Log: &LogConfig{
			Mode:  STDOUT,
			Level: logs.INFO,
		},
	}
}

// getParam : get param and convert
func getParam[T any](input map[string]any, paramName string) (T, error) {
	val, exists := input[paramName]
	if !exists {
		return *new(T), fmt.Errorf("cannot find param %s", paramName)
	}

	targetType := reflect.TypeOf(new(T)).Elem()
	valType := reflect.TypeOf(val)
	if valType.ConvertibleTo(targetType) {
		convertedVal := reflect.ValueOf(val).Convert(targetType).Interface()
		return convertedVal.(T), nil
	}

	return *new(T), fmt.Errorf("the param %s is not of type %T, real type: %T", paramName, *new(T), val)
}

func convertEnumParam[T common.Enum](input map[string]any, paramName string) (T, error) {
	var enumVal T

	enumName, err := getParam[string](input, paramName)
	if err != nil {
		return enumVal, err
	}

	enumInstance, err := enumVal.FromString(enumName)
	if err != nil {
		return enumVal, err
	}

	enumVal, ok := enumInstance.(T)
	if !ok {
		return enumVal, fmt.Errorf("the param %s assert error, target type %T, real type: %T", paramName, enumVal, enumInstance)
	}

	return enumVal, nil
}

type InstanceConfig struct {
	ToolConfig Config
	v          *viper.Viper
	rw         sync.RWMutex
}

func (ic *InstanceConfig) GetConfig() {
	ic.rw.RLocker().Lock()
	defer ic.rw.RLocker().Unlock()

	if ic.v == nil {
		panic("instance config viper reader is nil")
	}

	err := ic.v.ReadInConfig()
	if err != nil {
		panic(fmt.Sprintf("read config error, err: %v", err.Error()))
	}

	_, err = ic.ToolConfig.ReadConfig(ic.v.AllSettings())
	if err != nil {
		panic(fmt.Sprintf("read config error, err: %v", err.Error()))
	}
}

func (ic *InstanceConfig) SaveConfig() error {
	ic.rw.Lock()
	defer ic.rw.Unlock()

	mapConf := ic.ToolConfig.SaveConfig()

	for k, v := range mapConf {
		ic.v.Set(k, v)
	}

	return ic.v.WriteConfig()
}

const defaultConfigPath = "/etc/digestkit"
const configName = "config"
const configType = "yaml"

func NewInstanceConfig(configPaths ...string) *InstanceConfig {
	instanceConf := &InstanceConfig{
		ToolConfig: new(DigestConfig),
	}

	if len(configPaths) == 0 {
		configPaths = []string{filepath.Join(defaultConfigPath, fmt.Sprintf("%s.%s", configName, configType))}
	}

	var configFile string
	for _, path := range configPaths {
		if utils.FileExists(path) {
			configFile = path
			break
		}
	}

	if configFile == "" {
		panic(fmt.Sprintf("No config was found, please check config file in: %v", configPaths))
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	instanceConf.v = v

	return instanceConf
}

var (
	instance *InstanceConfig
	once     sync.Once
)

func InitInstanceConfig(configPath ...string) {
	once.Do(func() {
		instance = NewInstanceConfig(configPath...)
		instance.GetConfig()
	})
}

func GetInstanceConfig() *InstanceConfig {
	return instance
}

func GetRawConfig() (*DigestConfig, error) {
	instanceConf := GetInstanceConfig()
	if instanceConf == nil {
		return nil, fmt.Errorf("failed to get config instance")
	}

	conf, ok := instanceConf.ToolConfig.(*DigestConfig)
	if !ok {
		return nil, fmt.Errorf("failed to get raw config: expected *DigestConfig, got %s", reflect.TypeOf(instanceConf.ToolConfig))
	}

	return conf, nil
}

// ToLogsConfig 转换为logs包的配置
func (dc *DigestConfig) ToLogsConfig() *logs.Config {
	logConf := &logs.Config{LogLevel: logs.INFO}
	if dc.Log == nil {
		return logConf
	}

	logConf.LogLevel = dc.Log.Level
	if dc.Log.Mode == FILE || dc.Log.Mode == MIX {
		logConf.LogToFile = true
		if dc.Log.FilePath != nil {
			logConf.FilePath = *dc.Log.FilePath
		}
	}

	return logConf
}
