package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
)

// Client opens SSH connections to remote targets.
type Client struct {
	// DefaultTimeout bounds connection establishment when the target does
	// not set its own.
	DefaultTimeout time.Duration
	// DefaultUser is used when the target has no user configured.
	DefaultUser string
	// IdentityFiles are default private key paths to try.
	IdentityFiles []string
}

// NewClient creates a Client with conventional defaults.
func NewClient() *Client {
	homeDir, _ := os.UserHomeDir()
	return &Client{
		DefaultTimeout: 30 * time.Second,
		DefaultUser:    os.Getenv("USER"),
		IdentityFiles: []string{
			filepath.Join(homeDir, ".ssh", "id_ed25519"),
			filepath.Join(homeDir, ".ssh", "id_rsa"),
		},
	}
}

// Connection is an active SSH connection to one target.
type Connection struct {
	target Target
	client *ssh.Client
}

// Connect establishes a connection to the target. A failure affects only
// this target; callers report it as a single step failure.
func (c *Client) Connect(ctx context.Context, target Target) (*Connection, error) {
	authMethods, err := c.buildAuthMethods(target)
	if err != nil {
		return nil, fmt.Errorf("ssh auth for %s: %w", target.Name, err)
	}

	timeout := target.ConnectTimeout
	if timeout == 0 {
		timeout = c.DefaultTimeout
	}

	user := target.User
	if user == "" {
		user = c.DefaultUser
	}

	cfg := &ssh.ClientConfig{
		User:            user,
		Auth:            authMethods,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(), //nolint:gosec // Targets come from the user's own config
		Timeout:         timeout,
	}

	client, err := c.dial(ctx, target.Addr(), cfg)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", target.Name, err)
	}

	return &Connection{target: target, client: client}, nil
}

// dial establishes the TCP connection honoring ctx, then performs the SSH
// handshake. ssh.Dial alone cannot be cancelled.
func (c *Client) dial(ctx context.Context, addr string, cfg *ssh.ClientConfig) (*ssh.Client, error) {
	d := net.Dialer{Timeout: cfg.Timeout}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, addr, cfg)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return ssh.NewClient(sshConn, chans, reqs), nil
}

func (c *Client) buildAuthMethods(target Target) ([]ssh.AuthMethod, error) {
	var methods []ssh.AuthMethod

	if target.IdentityFile != "" {
		signer, err := loadPrivateKey(target.IdentityFile)
		if err != nil {
			return nil, fmt.Errorf("load identity file %s: %w", target.IdentityFile, err)
		}
		methods = append(methods, ssh.PublicKeys(signer))
	}

	// The agent covers passphrase-protected keys, which ParsePrivateKey
	// cannot read.
	if m := agentAuth(); m != nil {
		methods = append(methods, m)
	}

	for _, path := range c.IdentityFiles {
		if signer, err := loadPrivateKey(path); err == nil {
			methods = append(methods, ssh.PublicKeys(signer))
		}
	}

	if len(methods) == 0 {
		return nil, errors.New("no authentication methods available")
	}
	return methods, nil
}

// agentAuth connects to the running SSH agent, if any. The connection stays
// open for the rest of the run; the agent is consulted on every handshake.
func agentAuth() ssh.AuthMethod {
	sock := os.Getenv("SSH_AUTH_SOCK")
	if sock == "" {
		return nil
	}
	conn, err := net.Dial("unix", sock)
	if err != nil {
		return nil
	}
	return ssh.PublicKeysCallback(agent.NewClient(conn).Signers)
}

func loadPrivateKey(path string) (ssh.Signer, error) {
	key, err := os.ReadFile(expandHome(path))
	if err != nil {
		return nil, err
	}
	return ssh.ParsePrivateKey(key)
}

// Run executes a command on the remote host with output streamed to the
// given writers, and returns the exit code.
func (conn *Connection) Run(ctx context.Context, command string, stdout, stderr io.Writer) (int, error) {
	session, err := conn.client.NewSession()
	if err != nil {
		return -1, fmt.Errorf("open session on %s: %w", conn.target.Name, err)
	}
	defer func() { _ = session.Close() }()

	session.Stdout = stdout
	session.Stderr = stderr

	// Tear the session down if the run is cancelled mid-command.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = session.Signal(ssh.SIGINT)
			_ = session.Close()
		case <-done:
		}
	}()

	err = session.Run(command)
	if err == nil {
		return 0, nil
	}

	var exitErr *ssh.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitStatus(), nil
	}
	if ctx.Err() != nil {
		return -1, ctx.Err()
	}
	return -1, fmt.Errorf("run on %s: %w", conn.target.Name, err)
}

// Close closes the connection.
func (conn *Connection) Close() error {
	return conn.client.Close()
}

// quoteCommand renders a command line for the remote shell.
func quoteCommand(parts []string) string {
	quoted := make([]string, len(parts))
	for i, p := range parts {
		if strings.ContainsAny(p, " \t\"'$") {
			quoted[i] = fmt.Sprintf("%q", p)
		} else {
			quoted[i] = p
		}
	}
	return strings.Join(quoted, " ")
}
