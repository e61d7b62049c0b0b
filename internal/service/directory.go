package service

import (
	"crypto/tls"
	"time"

	"lab-portal-backend/internal/config"

	"github.com/go-ldap/ldap/v3"
)

// DirectoryUser represents a subset of directory attributes returned by the search
type DirectoryUser struct {
	DN          string `json:"dn"`
	DisplayName string `json:"displayName"`
	Mail        string `json:"mail"`
	GivenName   string `json:"givenName"`
	SN          string `json:"sn"`
	Mobile      string `json:"mobile"`
}

// Ensure DirectoryService implements DirectoryServiceInterface
var _ DirectoryServiceInterface = (*DirectoryService)(nil)

// DirectoryService looks up people in the institute's LDAP directory
type DirectoryService struct {
	cfg *config.Config
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(cfg *config.Config) *DirectoryService {
	return &DirectoryService{cfg: cfg}
}

// SearchByName searches directory entries by common name (cn prefix match)
func (s *DirectoryService) SearchByName(cn string) ([]DirectoryUser, error) {
	addr := s.cfg.LDAPHost + ":" + s.cfg.LDAPPort

	// Establish TLS connection to the directory server
	l, err := ldap.DialTLS("tcp", addr, &tls.Config{InsecureSkipVerify: s.cfg.LDAPInsecureSkipVerify})
	if err != nil {
		return nil, err
	}
	defer l.Close()

	if s.cfg.LDAPTimeoutSec > 0 {
		l.SetTimeout(time.Duration(s.cfg.LDAPTimeoutSec) * time.Second)
	}

	// Bind with configured credentials
	if err := l.Bind(s.cfg.LDAPBindDN, s.cfg.LDAPBindPW); err != nil {
		return nil, err
	}

	filter := "(cn=" + ldap.EscapeFilter(cn) + "*)"
	attrs := []string{"displayName", "mail", "givenName", "sn", "mobile"}

	req := ldap.NewSearchRequest(
		s.cfg.LDAPBaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		0,
		s.cfg.LDAPTimeoutSec,
		false,
		filter,
		attrs,
		nil,
	)

	res, err := l.Search(req)
	if err != nil {
		return nil, err
	}

	out := make([]DirectoryUser, 0, len(res.Entries))
	for _, e := range res.Entries {
		get := func(a string) string { return e.GetAttributeValue(a) }
		out = append(out, DirectoryUser{
			DN:          e.DN,
			DisplayName: get("displayName"),
			Mail:        get("mail"),
			GivenName:   get("givenName"),
			SN:          get("sn"),
			Mobile:      get("mobile"),
		})
	}

	return out, nil
}
