// Package dsn builds vendor-specific connection strings from one set of
// connection parameters.
package dsn

import (
	"fmt"
	"net/url"
	"strings"
)

const DefaultTimeout = 30 // seconds

// Params holds everything needed to reach a database. A fresh Params is
// built from current field values on every action and discarded afterwards.
type Params struct {
	Vendor     string `yaml:"vendor"`
	Host       string `yaml:"host"`
	Port       int    `yaml:"port,omitempty"`
	Database   string `yaml:"database"`
	User       string `yaml:"user,omitempty"`
	Password   string `yaml:"password,omitempty"`
	Integrated bool   `yaml:"integrated,omitempty"`
	Persist    bool   `yaml:"persist_security,omitempty"`
	Timeout    int    `yaml:"timeout,omitempty"`
}

func (p Params) timeout() int {
	if p.Timeout <= 0 {
		return DefaultTimeout
	}
	return p.Timeout
}

// Build returns the driver connection string for the vendor.
func (p Params) Build() (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	switch Normalize(p.Vendor) {
	case "sqlserver":
		return p.buildSQLServer(), nil
	case "oracle":
		return p.buildOracle(), nil
	case "postgres":
		return p.buildPostgres(), nil
	case "mysql":
		return p.buildMySQL(), nil
	case "sqlite":
		return p.Database, nil
	default:
		return "", fmt.Errorf("unsupported vendor: %s", p.Vendor)
	}
}

// Validate checks that the fields required by the vendor are present. Vendor
// aliases are accepted wherever Normalize accepts them.
func (p Params) Validate() error {
	switch Normalize(p.Vendor) {
	case "sqlite":
		if p.Database == "" {
			return fmt.Errorf("sqlite: database file path is required")
		}
		return nil
	case "sqlserver", "oracle", "postgres", "mysql":
		if p.Host == "" {
			return fmt.Errorf("%s: host is required", p.Vendor)
		}
		if p.Database == "" {
			return fmt.Errorf("%s: database name is required", p.Vendor)
		}
		if !p.Integrated && p.User == "" {
			return fmt.Errorf("%s: user is required unless integrated security is enabled", p.Vendor)
		}
		return nil
	case "":
		return fmt.Errorf("vendor is required")
	default:
		return fmt.Errorf("unsupported vendor: %s", p.Vendor)
	}
}

func (p Params) buildSQLServer() string {
	q := url.Values{}
	q.Set("database", p.Database)
	q.Set("connection timeout", fmt.Sprintf("%d", p.timeout()))
	q.Set("encrypt", "disable")
	q.Set("trustservercertificate", "true")
	if p.Integrated {
		q.Set("trusted_connection", "yes")
	}

	u := &url.URL{
		Scheme:   "sqlserver",
		Host:     hostPort(p.Host, p.Port),
		RawQuery: q.Encode(),
	}
	if !p.Integrated {
		u.User = url.UserPassword(p.User, p.Password)
	}
	return u.String()
}

// buildOracle emits godror's logfmt form. Integrated security maps to
// external (OS wallet) authentication, which takes no user or password.
func (p Params) buildOracle() string {
	connect := hostPort(p.Host, p.Port) + "/" + p.Database

	var b strings.Builder
	if p.Integrated {
		fmt.Fprintf(&b, "connectString=%q externalAuth=1", connect)
	} else {
		fmt.Fprintf(&b, "user=%q password=%q connectString=%q", p.User, p.Password, connect)
	}
	fmt.Fprintf(&b, " timeout=%ds", p.timeout())
	return b.String()
}

func (p Params) buildPostgres() string {
	kv := []string{
		"host=" + p.Host,
		"dbname=" + p.Database,
		"sslmode=disable",
		fmt.Sprintf("connect_timeout=%d", p.timeout()),
	}
	if p.Port > 0 {
		kv = append(kv, fmt.Sprintf("port=%d", p.Port))
	}
	if !p.Integrated {
		kv = append(kv, "user="+p.User, "password="+quotePG(p.Password))
	}
	return strings.Join(kv, " ")
}

func (p Params) buildMySQL() string {
	cred := ""
	if !p.Integrated {
		cred = p.User + ":" + p.Password + "@"
	}
	return fmt.Sprintf("%stcp(%s)/%s?timeout=%ds", cred, hostPort(p.Host, p.Port), p.Database, p.timeout())
}

// Redacted returns the connection string with the password masked. When the
// persist-security flag is set the password stays readable, matching the
// classic "Persist Security Info" semantics.
func (p Params) Redacted() (string, error) {
	if p.Persist || p.Password == "" {
		return p.Build()
	}
	masked := p
	masked.Password = "****"
	return masked.Build()
}

// String implements fmt.Stringer and never panics on invalid params.
func (p Params) String() string {
	s, err := p.Redacted()
	if err != nil {
		return fmt.Sprintf("%s://%s/%s (invalid: %v)", p.Vendor, p.Host, p.Database, err)
	}
	return s
}

func hostPort(host string, port int) string {
	if port > 0 {
		return fmt.Sprintf("%s:%d", host, port)
	}
	return host
}

// quotePG single-quotes values containing spaces for key=value DSNs.
func quotePG(v string) string {
	if strings.ContainsAny(v, " '") {
		return "'" + strings.ReplaceAll(v, "'", `\'`) + "'"
	}
	return v
}

// Vendors lists the supported vendor identifiers in display order.
func Vendors() []string {
	return []string{"sqlserver", "oracle", "postgres", "mysql", "sqlite"}
}

// Normalize maps vendor aliases to their canonical identifier.
func Normalize(vendor string) string {
	switch strings.ToLower(vendor) {
	case "mssql", "sqlserver":
		return "sqlserver"
	case "godror", "oracle":
		return "oracle"
	case "postgresql", "postgres":
		return "postgres"
	case "mariadb", "mysql":
		return "mysql"
	case "sqlite3", "sqlite":
		return "sqlite"
	default:
		return strings.ToLower(vendor)
	}
}
