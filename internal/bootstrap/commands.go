package bootstrap

// Remote paths and ports of the RKE2 distribution. The install sequences
// are idempotent: the installer script is a no-op on an already installed
// node and systemctl enable/start tolerate an active unit.
const (
	// tokenPath doubles as the readiness marker: rke2-server writes it once
	// the control plane finished its initial bootstrap.
	tokenPath      = "/var/lib/rancher/rke2/server/node-token"
	kubeconfigPath = "/etc/rancher/rke2/rke2.yaml"
	agentConfigDir = "/etc/rancher/rke2"

	// kubeAPIPort is the port of the Kubernetes API server on a master.
	kubeAPIPort = 6443
	// supervisorPort is the RKE2 supervisory API workers register against.
	supervisorPort = 9345
)

const (
	installServerCommand = "curl -sfL https://get.rke2.io | sudo INSTALL_RKE2_TYPE=server sh -"
	enableServerCommand  = "sudo systemctl enable rke2-server.service"
	startServerCommand   = "sudo systemctl start rke2-server.service"

	installAgentCommand = "curl -sfL https://get.rke2.io | sudo INSTALL_RKE2_TYPE=agent sh -"
	enableAgentCommand  = "sudo systemctl enable rke2-agent.service"
	startAgentCommand   = "sudo systemctl start rke2-agent.service"

	checkMarkerCommand    = "sudo test -f " + tokenPath
	readTokenCommand      = "sudo cat " + tokenPath
	readKubeconfigCommand = "sudo cat " + kubeconfigPath

	// The agent config is piped through stdin; the command text never
	// carries the join token.
	writeAgentConfigCommand = "sudo mkdir -p " + agentConfigDir +
		" && sudo tee " + agentConfigDir + "/config.yaml > /dev/null" +
		" && sudo chmod 600 " + agentConfigDir + "/config.yaml"

	pingCommand = "echo ok"
)
