package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type AuthConfig struct {
	JWTSecret        string `mapstructure:"jwt_secret"`
	TokenExpMinutes  int    `mapstructure:"token_exp_minutes"`
	BcryptCost       int    `mapstructure:"bcrypt_cost"`
	AdminEmail       string `mapstructure:"admin_email"`
	AdminPassword    string `mapstructure:"admin_password"`
	SeedAdminAccount bool   `mapstructure:"seed_admin_account"`
}

// AuthorizationConfig holds the ACL table as loaded from configuration:
// role -> resource segment -> allowed methods, where a rule of ["*"]
// allows every method on that segment.
type AuthorizationConfig struct {
	ACL map[string]map[string][]string `mapstructure:"acl"`
}
