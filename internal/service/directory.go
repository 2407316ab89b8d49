package service

import (
	"crypto/tls"
	"time"

	"taskboard-backend/internal/config"

	"github.com/go-ldap/ldap/v3"
)

// DirectoryUser is the subset of directory attributes the manager UI needs to
// prefill an employee provisioning form
type DirectoryUser struct {
	DN          string `json:"dn"`
	DisplayName string `json:"display_name"`
	Mail        string `json:"mail"`
	GivenName   string `json:"given_name"`
	SN          string `json:"sn"`
}

// DirectoryService looks employees up in the corporate LDAP directory. It is
// optional convenience tooling around provisioning, not part of the
// materialization core; an unset LDAP_HOST disables it.
type DirectoryService struct {
	cfg *config.Config
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(cfg *config.Config) *DirectoryService {
	return &DirectoryService{cfg: cfg}
}

// SearchByName searches directory users by common-name prefix
func (s *DirectoryService) SearchByName(query string) ([]DirectoryUser, error) {
	addr := s.cfg.LDAPHost + ":" + s.cfg.LDAPPort

	l, err := ldap.DialTLS("tcp", addr, &tls.Config{InsecureSkipVerify: s.cfg.LDAPInsecureSkipVerify})
	if err != nil {
		return nil, err
	}
	defer l.Close()

	if s.cfg.LDAPTimeoutSec > 0 {
		l.SetTimeout(time.Duration(s.cfg.LDAPTimeoutSec) * time.Second)
	}

	if err := l.Bind(s.cfg.LDAPBindDN, s.cfg.LDAPBindPW); err != nil {
		return nil, err
	}

	filter := "(cn=" + ldap.EscapeFilter(query) + "*)"
	attrs := []string{"displayName", "mail", "givenName", "sn"}

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
		out = append(out, DirectoryUser{
			DN:          e.DN,
			DisplayName: e.GetAttributeValue("displayName"),
			Mail:        e.GetAttributeValue("mail"),
			GivenName:   e.GetAttributeValue("givenName"),
			SN:          e.GetAttributeValue("sn"),
		})
	}
	return out, nil
}
