package main

import (
	"fmt"
	"io"

	"github.com/go-redis/redis/v7"
	"github.com/tommy351/binreader"
	lzf "github.com/zhuyie/golzf"
)

type SourceOptions struct {
	Path      string
	Stdin     io.Reader
	RedisAddr string
	RedisKey  string
	LZFSize   int
}

// OpenSource loads the whole input into a reader. The input is a Redis key
// when RedisAddr is set, otherwise the file at Path or Stdin.
func OpenSource(opts SourceOptions) (*binreader.Reader, error) {
	r, err := openRawSource(opts)

	if err != nil {
		return nil, err
	}

	if opts.LZFSize > 0 {
		return decompressLZF(r, opts.LZFSize)
	}

	return r, nil
}

func openRawSource(opts SourceOptions) (*binreader.Reader, error) {
	switch {
	case opts.RedisAddr != "":
		return readRedisKey(opts.RedisAddr, opts.RedisKey)
	case opts.Path != "":
		return binreader.Open(opts.Path)
	}

	return binreader.NewReaderFromStream(opts.Stdin)
}

func readRedisKey(addr, key string) (*binreader.Reader, error) {
	if key == "" {
		// nolint: goerr113
		return nil, fmt.Errorf("redis key is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	defer client.Close()

	buf, err := client.Get(key).Bytes()

	if err != nil {
		return nil, binreader.SourceError{Path: "redis://" + addr + "/" + key, Err: err}
	}

	return binreader.NewReader(buf), nil
}

func decompressLZF(r *binreader.Reader, size int) (*binreader.Reader, error) {
	compressed, err := r.ReadBytes(r.Remaining())

	if err != nil {
		return nil, err
	}

	buf := make([]byte, size)
	n, err := lzf.Decompress(compressed, buf)

	if err != nil {
		return nil, fmt.Errorf("failed to decompress LZF: %w", err)
	}

	return binreader.NewReader(buf[:n]), nil
}
