package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Redis        RedisConfig        `mapstructure:"redis"`
	JWT          JWTConfig          `mapstructure:"jwt"`
	OSS          OSSConfig          `mapstructure:"oss"`
	OAuth        OAuthConfig        `mapstructure:"oauth"`
	Email        EmailConfig        `mapstructure:"email"`
	Queue        QueueConfig        `mapstructure:"queue"`
	CORS         CORSConfig         `mapstructure:"cors"`
	Cash         CashConfig         `mapstructure:"cash"`
	Missions     MissionConfig      `mapstructure:"missions"`
	Automation   AutomationConfig   `mapstructure:"automation"`
	StoreInfo    StoreInfoConfig    `mapstructure:"store_info"`
	Subscription SubscriptionConfig `mapstructure:"subscription"`
	Stats        StatsConfig        `mapstructure:"stats"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	Database     string `mapstructure:"database"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

type OSSConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	AccessKeySecret string `mapstructure:"access_key_secret"`
	BucketName      string `mapstructure:"bucket_name"`
	CDNDomain       string `mapstructure:"cdn_domain"`
}

type OAuthConfig struct {
	Kakao KakaoOAuthConfig `mapstructure:"kakao"`
}

type KakaoOAuthConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURI  string `mapstructure:"redirect_uri"`
}

type EmailConfig struct {
	SMTPHost string `mapstructure:"smtp_host"`
	SMTPPort int    `mapstructure:"smtp_port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

type QueueConfig struct {
	NotificationQueue string `mapstructure:"notification_queue"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
}

// CashConfig AI캐시 정책 (가입 보너스, 추천 보상 등)
type CashConfig struct {
	SignupBonus      int `mapstructure:"signup_bonus"`       // 일반 가입 지급액
	KakaoSignupBonus int `mapstructure:"kakao_signup_bonus"` // 카카오 첫 로그인 지급액
	ReferralReward   int `mapstructure:"referral_reward"`    // 추천인 보상
}

// MissionConfig 챌린저 미션 7일 구성
type MissionConfig struct {
	Days        []MissionDay `mapstructure:"days"`
	StreakBonus int          `mapstructure:"streak_bonus"` // 7일 전체 완료 보너스
}

type MissionDay struct {
	Day    int    `mapstructure:"day"`
	Title  string `mapstructure:"title"`
	Reward int    `mapstructure:"reward"`
}

type AutomationConfig struct {
	TotalStages      int `mapstructure:"total_stages"`
	CompletionReward int `mapstructure:"completion_reward"`
}

type StoreInfoConfig struct {
	ExtraEntryCost int `mapstructure:"extra_entry_cost"` // 첫 등록 이후 건당 차감액
}

type SubscriptionConfig struct {
	Plans map[string]SubscriptionPlan `mapstructure:"plans"`
}

type SubscriptionPlan struct {
	Price        int `mapstructure:"price"` // AI캐시 차감액
	DurationDays int `mapstructure:"duration_days"`
}

type StatsConfig struct {
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds"`
}

func Load(configPath string) (*Config, error) {
	// config.local.yaml 이 있으면 우선 사용 (실제 키 보관용, git 미포함)
	dir := filepath.Dir(configPath)
	localConfigPath := filepath.Join(dir, "config.local.yaml")

	if _, err := os.Stat(localConfigPath); err == nil {
		configPath = localConfigPath
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	// 환경변수 오버라이드
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
