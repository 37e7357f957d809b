package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the restaurant POS backend.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	AMQP     AMQPConfig     `yaml:"amqp"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            int `yaml:"port"`
	ShutdownTimeout int `yaml:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL connection configuration.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// AMQPConfig holds RabbitMQ connection configuration.
type AMQPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// Load reads configuration from a YAML file. Only the flat
// section/key format used by config.yaml is supported.
func Load(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	config := &Config{}
	scanner := bufio.NewScanner(file)

	var currentSection string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasSuffix(line, ":") && !strings.Contains(line, " ") {
			currentSection = strings.TrimSuffix(line, ":")
			continue
		}

		if strings.Contains(line, ":") {
			parts := strings.SplitN(line, ":", 2)
			if len(parts) != 2 {
				continue
			}

			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])

			if err := config.setValue(currentSection, key, value); err != nil {
				return nil, fmt.Errorf("failed to set config value %s.%s: %w", currentSection, key, err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return config, nil
}

func (c *Config) setValue(section, key, value string) error {
	switch section {
	case "server":
		return c.setServerValue(key, value)
	case "database":
		return c.setDatabaseValue(key, value)
	case "amqp":
		return c.setAMQPValue(key, value)
	default:
		return fmt.Errorf("unknown section: %s", section)
	}
}

func (c *Config) setServerValue(key, value string) error {
	switch key {
	case "port":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid port value: %w", err)
		}
		c.Server.Port = port
	case "shutdown_timeout":
		timeout, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid shutdown_timeout value: %w", err)
		}
		c.Server.ShutdownTimeout = timeout
	default:
		return fmt.Errorf("unknown server key: %s", key)
	}
	return nil
}

func (c *Config) setDatabaseValue(key, value string) error {
	switch key {
	case "host":
		c.Database.Host = value
	case "port":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid port value: %w", err)
		}
		c.Database.Port = port
	case "user":
		c.Database.User = value
	case "password":
		c.Database.Password = value
	case "database":
		c.Database.Database = value
	default:
		return fmt.Errorf("unknown database key: %s", key)
	}
	return nil
}

func (c *Config) setAMQPValue(key, value string) error {
	switch key {
	case "host":
		c.AMQP.Host = value
	case "port":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid port value: %w", err)
		}
		c.AMQP.Port = port
	case "user":
		c.AMQP.User = value
	case "password":
		c.AMQP.Password = value
	default:
		return fmt.Errorf("unknown amqp key: %s", key)
	}
	return nil
}

// DatabaseURL returns a PostgreSQL connection URL.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Database)
}

// AMQPURL returns an AMQP connection URL.
func (c *Config) AMQPURL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/",
		c.AMQP.User, c.AMQP.Password, c.AMQP.Host, c.AMQP.Port)
}
