// Package discovery models the identity records OpenBikeControl
// devices publish over mDNS. It converts between the Identity struct
// and the TXT key/value schema, and adapts raw service entries from the
// resolver. Running the browse loop itself is the application's job.
package discovery

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/hashicorp/mdns"
)

// ServiceType is the mDNS service type OpenBikeControl devices
// advertise under.
const ServiceType = "_openbikecontrol._tcp"

// ErrIncompleteIdentity reports TXT records missing a mandatory key.
var ErrIncompleteIdentity = errors.New("incomplete device identity")

// Identity is the device identity a TXT record carries.
type Identity struct {
	// Version is the protocol generation as a string, "1" today.
	// Consumers gate on it before connecting.
	Version string

	// ID is the stable device identifier, EUI-48 hex by convention.
	ID string

	Name         string
	ServiceUUIDs string // comma-separated BLE service UUIDs, if the device is dual-stack
	Manufacturer string
	Model        string
}

// TXT renders the identity as key=value records in the documented
// order. Empty fields are omitted.
func (id Identity) TXT() []string {
	pairs := []struct{ key, value string }{
		{"version", id.Version},
		{"id", id.ID},
		{"name", id.Name},
		{"service-uuids", id.ServiceUUIDs},
		{"manufacturer", id.Manufacturer},
		{"model", id.Model},
	}
	records := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if p.value == "" {
			continue
		}
		records = append(records, p.key+"="+p.value)
	}
	return records
}

// ParseTXT reads key=value records into an Identity. Unknown keys and
// records without a separator are ignored so newer devices stay
// readable.
func ParseTXT(records []string) Identity {
	var id Identity
	for _, rec := range records {
		key, value, ok := strings.Cut(rec, "=")
		if !ok {
			continue
		}
		switch key {
		case "version":
			id.Version = value
		case "id":
			id.ID = value
		case "name":
			id.Name = value
		case "service-uuids":
			id.ServiceUUIDs = value
		case "manufacturer":
			id.Manufacturer = value
		case "model":
			id.Model = value
		}
	}
	return id
}

// Validate checks that the mandatory identity keys are present.
func (id Identity) Validate() error {
	if id.Version == "" {
		return fmt.Errorf("%w: missing version", ErrIncompleteIdentity)
	}
	if id.ID == "" {
		return fmt.Errorf("%w: missing id", ErrIncompleteIdentity)
	}
	return nil
}

// FromServiceEntry adapts a resolved mDNS entry into a validated
// Identity. When the TXT data has no name key, the instance name from
// the service entry fills in.
func FromServiceEntry(entry *mdns.ServiceEntry) (Identity, error) {
	if entry == nil {
		return Identity{}, errors.New("nil service entry")
	}
	id := ParseTXT(entry.InfoFields)
	if id.Name == "" {
		id.Name = strings.TrimSuffix(entry.Name, "."+ServiceType+".local.")
	}
	if err := id.Validate(); err != nil {
		return Identity{}, err
	}
	return id, nil
}

// Endpoint returns the host:port to dial for a resolved entry,
// preferring IPv4 the way the reference tooling does.
func Endpoint(entry *mdns.ServiceEntry) (string, error) {
	if entry == nil {
		return "", errors.New("nil service entry")
	}
	var host string
	switch {
	case entry.AddrV4 != nil:
		host = entry.AddrV4.String()
	case entry.AddrV6 != nil:
		host = entry.AddrV6.String()
	default:
		return "", fmt.Errorf("no address for service %s", entry.Name)
	}
	return net.JoinHostPort(host, strconv.Itoa(entry.Port)), nil
}
