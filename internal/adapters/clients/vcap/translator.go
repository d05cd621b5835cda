package vcap

import (
	"github.com/jsamuelsen11/solace-autoconfig/internal/domain/binding"
)

// ToRecord converts a bound service instance to a binding record. The record
// id is the instance name, falling back to the name when the platform did not
// publish one. dto.Credentials must be non-nil.
func ToRecord(dto *ServiceDTO) binding.Record {
	c := dto.Credentials
	id := dto.InstanceName
	if id == "" {
		id = dto.Name
	}

	return binding.Record{
		ID:        id,
		Name:      dto.Name,
		Label:     dto.Label,
		Plan:      dto.Plan,
		Tags:      dto.Tags,
		Hosts:     c.SmfHosts,
		Namespace: c.MsgVpnName,
		Username:  c.ClientUsername,
		Password:  c.ClientPassword,
		Endpoints: binding.Endpoints{
			TLSHosts:            c.SmfTLSHosts,
			CompressedHosts:     c.SmfZipHosts,
			WebMessagingURIs:    c.WebMessagingURIs,
			WebMessagingTLSURIs: c.WebMessagingTLSURIs,
			JMSJNDIURIs:         c.JMSJNDIURIs,
			JMSJNDITLSURIs:      c.JMSJNDITLSURIs,
			MQTTURIs:            c.MQTTURIs,
			MQTTTLSURIs:         c.MQTTTLSURIs,
			MQTTWSURIs:          c.MQTTWSURIs,
			MQTTWSSURIs:         c.MQTTWSSURIs,
			RESTURIs:            c.RESTURIs,
			RESTTLSURIs:         c.RESTTLSURIs,
			AMQPURIs:            c.AMQPURIs,
			AMQPTLSURIs:         c.AMQPTLSURIs,
		},
		Management: binding.Management{
			Hostnames:      c.ManagementHostnames,
			ActiveHostname: c.ActiveManagementHostname,
			Username:       c.ManagementUsername,
			Password:       c.ManagementPassword,
		},
	}
}
