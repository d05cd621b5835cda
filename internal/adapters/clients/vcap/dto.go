// Package vcap discovers broker service bindings from the Cloud Foundry
// VCAP_SERVICES environment variable and translates them into binding records.
package vcap

// ServicesDTO is the decoded VCAP_SERVICES document: service label to the
// instances bound under it.
type ServicesDTO map[string][]ServiceDTO

// ServiceDTO is one bound service instance.
type ServiceDTO struct {
	Name         string          `json:"name"`
	InstanceName string          `json:"instance_name"`
	Label        string          `json:"label"`
	Plan         string          `json:"plan"`
	Provider     string          `json:"provider"`
	Tags         []string        `json:"tags"`
	Credentials  *CredentialsDTO `json:"credentials"`
}

// CredentialsDTO matches the credentials block published by the broker
// service broker.
type CredentialsDTO struct {
	SmfHosts                 []string `json:"smfHosts"`
	SmfTLSHosts              []string `json:"smfTlsHosts"`
	SmfZipHosts              []string `json:"smfZipHosts"`
	MsgVpnName               string   `json:"msgVpnName"`
	ClientUsername           string   `json:"clientUsername"`
	ClientPassword           string   `json:"clientPassword"`
	WebMessagingURIs         []string `json:"webMessagingUris"`
	WebMessagingTLSURIs      []string `json:"webMessagingTlsUris"`
	JMSJNDIURIs              []string `json:"jmsJndiUris"`
	JMSJNDITLSURIs           []string `json:"jmsJndiTlsUris"`
	MQTTURIs                 []string `json:"mqttUris"`
	MQTTTLSURIs              []string `json:"mqttTlsUris"`
	MQTTWSURIs               []string `json:"mqttWsUris"`
	MQTTWSSURIs              []string `json:"mqttWssUris"`
	RESTURIs                 []string `json:"restUris"`
	RESTTLSURIs              []string `json:"restTlsUris"`
	AMQPURIs                 []string `json:"amqpUris"`
	AMQPTLSURIs              []string `json:"amqpTlsUris"`
	ManagementHostnames      []string `json:"managementHostnames"`
	ActiveManagementHostname string   `json:"activeManagementHostname"`
	ManagementUsername       string   `json:"managementUsername"`
	ManagementPassword       string   `json:"managementPassword"`
}
