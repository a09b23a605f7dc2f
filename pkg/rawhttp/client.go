// Package rawhttp implements a deliberately minimal HTTP/1.1 client on a raw
// TCP socket. It issues a single unauthenticated GET with Connection: close,
// parses headers only far enough to find Content-Length, and hands the open
// connection back to the caller so competing body-retrieval policies can be
// timed in isolation. Redirects, compression, chunked encoding, TLS and
// keep-alive are all out of scope.
package rawhttp

import (
	"bufio"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

// Response is an open connection positioned at the first body byte, plus the
// Content-Length parsed from the header block. It owns the underlying socket;
// exactly one body policy must be applied, then Close called.
type Response struct {
	conn net.Conn
	r    *bufio.Reader

	// ContentLength is the declared body size in bytes.
	ContentLength int
}

// Get connects to the URL's host, writes a minimal GET request and consumes
// the response header block. The returned Response is ready for one of the
// body policies in body.go. The connection is closed on every error path.
func Get(rawURL, userAgent string) (*Response, error) {
	host, port, path, err := splitURL(rawURL)
	if err != nil {
		return nil, err
	}

	conn, err := net.Dial("tcp", net.JoinHostPort(host, port))
	if err != nil {
		return nil, fmt.Errorf("connect %s:%s: %w", host, port, err)
	}

	resp, err := readHeader(conn, host, port, path, userAgent)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return resp, nil
}

// Close releases the underlying socket. Safe to call more than once.
func (resp *Response) Close() error {
	return resp.conn.Close()
}

func splitURL(rawURL string) (host, port, path string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", "", fmt.Errorf("parse url: %w", err)
	}
	if u.Scheme != "http" {
		return "", "", "", fmt.Errorf("unsupported scheme %q (only http)", u.Scheme)
	}
	host = u.Hostname()
	if host == "" {
		return "", "", "", fmt.Errorf("url %q has no host", rawURL)
	}
	port = u.Port()
	if port == "" {
		port = "80"
	}
	path = u.RequestURI()
	if path == "" {
		path = "/"
	}
	return host, port, path, nil
}

// readHeader writes the request and scans header lines until the blank-line
// terminator. Only Content-Length is kept; every other line is discarded.
func readHeader(conn net.Conn, host, port, path, userAgent string) (*Response, error) {
	var req strings.Builder
	req.WriteString("GET " + path + " HTTP/1.1\r\n")
	req.WriteString("Host: " + host + ":" + port + "\r\n")
	req.WriteString("User-Agent: " + userAgent + "\r\n")
	req.WriteString("Connection: close\r\n")
	req.WriteString("Accept: */*\r\n")
	req.WriteString("\r\n")

	if _, err := conn.Write([]byte(req.String())); err != nil {
		return nil, fmt.Errorf("write request: %w", err)
	}

	r := bufio.NewReader(conn)
	length := -1
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("read response header: %w", err)
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			if length < 0 {
				return nil, ErrMissingContentLength
			}
			return &Response{conn: conn, r: r, ContentLength: length}, nil
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok || !strings.EqualFold(name, "Content-Length") {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("bad Content-Length %q", strings.TrimSpace(value))
		}
		length = n
	}
}
