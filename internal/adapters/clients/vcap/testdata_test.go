package vcap_test

// oneService mirrors the credentials block published for a single shared
// broker instance.
const oneService = `{
  "solace-messaging": [{
    "credentials": {
      "clientUsername": "sample-client-username",
      "clientPassword": "sample-client-password",
      "msgVpnName": "sample-msg-vpn",
      "smfHosts": ["tcp://192.168.1.50:7000"],
      "smfTlsHosts": ["tcps://192.168.1.50:7003", "tcps://192.168.1.51:7003"],
      "smfZipHosts": ["tcp://192.168.1.50:7001"],
      "webMessagingUris": ["http://192.168.1.50:80"],
      "webMessagingTlsUris": ["https://192.168.1.50:80"],
      "jmsJndiUris": ["smf://192.168.1.50:7000"],
      "jmsJndiTlsUris": ["smfs://192.168.1.50:7003", "smfs://192.168.1.51:7003"],
      "mqttUris": ["tcp://192.168.1.50:7020"],
      "mqttTlsUris": ["ssl://192.168.1.50:7021", "ssl://192.168.1.51:7021"],
      "mqttWsUris": ["ws://192.168.1.50:7022"],
      "mqttWssUris": ["wss://192.168.1.50:7023", "wss://192.168.1.51:7023"],
      "restUris": ["http://192.168.1.50:7018"],
      "restTlsUris": ["https://192.168.1.50:7019"],
      "amqpUris": ["amqp://192.168.1.50:7016"],
      "amqpTlsUris": ["amqps://192.168.1.50:7017"],
      "managementHostnames": ["vmr-Medium-VMR-0"],
      "managementUsername": "sample-mgmt-username",
      "managementPassword": "sample-mgmt-password",
      "activeManagementHostname": "vmr-medium-web"
    },
    "label": "solace-messaging",
    "name": "test-service-instance-name",
    "plan": "vmr-shared",
    "provider": "Solace Systems",
    "tags": ["solace", "solace-messaging", "rest", "mqtt", "mq", "queue", "jms", "messaging", "amqp"]
  }]
}`

const mixedServices = `{
  "p-mysql": [{"name": "db", "tags": ["mysql"], "credentials": {"smfHosts": ["tcp://nope:1"]}}],
  "user-provided": [
    {"name": "ups-broker", "tags": ["solace"], "credentials": {"smfHosts": ["tcp://ups:55555"]}},
    {"name": "ups-other", "tags": ["other"], "credentials": {"smfHosts": ["tcp://other:1"]}}
  ],
  "solace-messaging": [
    {"name": "messaging-a", "credentials": {"smfHosts": ["tcp://a:55555"]}},
    {"name": "messaging-b", "credentials": {"smfHosts": ["tcp://b:55555"]}}
  ],
  "solace-pubsub": [
    {"name": "pubsub-a", "instance_name": "pubsub-a-instance", "credentials": {"smfHosts": ["tcp://p:55555"]}},
    {"name": "pubsub-no-creds"}
  ]
}`
