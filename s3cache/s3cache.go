/* Copyright (c) 2013 The s3cache AUTHORS. All rights reserved.
 * Copyright (c) 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file in the current directory for license terms
 *
 * Package s3cache provides an implementation of httpcache.Cache that
 * stores and retrieves data using Amazon S3. It is based on the original
 * github.com/sourcegraph/s3cache but updated to use the more modern
 * aws-sdk-go-v2 and golang standard library functions.
 */
package s3cache

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

const objectPrefix = "webcache"

// Cache objects store and retrieve data using Amazon S3.
type Cache struct {
	// Config is the Amazon S3 configuration; populated by Init().
	Config aws.Config

	// Client is the s3 client the cache uses. Init() sets it from the
	// default Config but callers may override it before first use.
	Client *s3.Client

	bucketName string
	gzip       bool
	logErrors  bool
	ctx        context.Context
}

// New returns a Cache backed by the named S3 bucket, optionally gzipping
// entries at rest. Callers must invoke Init() on the returned Cache
// before use.
func New(ctx context.Context, bucketName string, gzipEntries bool,
	logErrors bool) *Cache {

	return &Cache{
		ctx:        ctx,
		bucketName: bucketName,
		gzip:       gzipEntries,
		logErrors:  logErrors,
	}
}

// Init loads AWS configuration from the default sources (environment
// variables, shared config/credential files) and verifies the bucket is
// reachable with list permission.
func (c *Cache) Init() error {
	var err error
	c.Config, err = config.LoadDefaultConfig(c.ctx)
	if err != nil {
		return fmt.Errorf("s3cache.init: failed to load AWS config: %w", err)
	}
	c.Client = s3.NewFromConfig(c.Config)

	if _, err = c.Client.HeadBucket(c.ctx, &s3.HeadBucketInput{
		Bucket: aws.String(c.bucketName),
	}); err != nil {
		return fmt.Errorf("s3cache.init: head bucket failed for %s: %w",
			c.bucketName, err)
	}
	if _, err = c.Client.ListObjectsV2(c.ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(c.bucketName),
		MaxKeys: aws.Int32(1),
	}); err != nil {
		return fmt.Errorf("s3cache.init: list objects failed for %s: %w",
			c.bucketName, err)
	}

	return nil
}

// Get implements httpcache.Cache. A missing object is just a cache miss.
func (c *Cache) Get(key string) ([]byte, bool) {
	objKey := c.objectKey(key)
	resp, err := c.Client.GetObject(c.ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(objKey),
	})
	if err != nil {
		var apiErr smithy.APIError
		if !(errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey") {
			c.logf("s3cache.get: failed to get object %v/%v: %v",
				c.bucketName, objKey, err)
		}
		return []byte{}, false
	}
	defer resp.Body.Close()

	rdr := io.ReadCloser(resp.Body)
	if c.gzip {
		rdr, err = gzip.NewReader(resp.Body)
		if err != nil {
			c.logf("s3cache.get: failed to open compressed object %v/%v: %v",
				c.bucketName, objKey, err)
			return nil, false
		}
		defer rdr.Close()
	}

	data, err := io.ReadAll(rdr)
	if err != nil {
		c.logf("s3cache.get: failed to read object %v/%v: %v", c.bucketName,
			objKey, err)
	}

	return data, err == nil
}

// Set implements httpcache.Cache; failures are logged but not surfaced
// since httpcache treats storage as best effort.
func (c *Cache) Set(key string, data []byte) {
	objKey := c.objectKey(key)
	input := &s3.PutObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(objKey),
		Body:   bytes.NewReader(data),
	}

	if c.gzip {
		compressed, err := gzipBytes(data)
		if err != nil {
			c.logf("s3cache.set: failed to gzip data for %v/%v: %v",
				c.bucketName, objKey, err)
			return
		}
		input.Body = bytes.NewReader(compressed)
		input.ContentEncoding = aws.String("gzip")
	}

	if _, err := c.Client.PutObject(c.ctx, input); err != nil {
		c.logf("s3cache.set: put failed for %v/%v: %v", c.bucketName,
			objKey, err)
	}
}

// Delete implements httpcache.Cache.
func (c *Cache) Delete(key string) {
	_, err := c.Client.DeleteObject(c.ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(c.objectKey(key)),
	})
	if err != nil {
		c.logf("s3cache.delete: delete failed: %v", err)
	}
}

// objectKey hashes the cache key so arbitrary URLs form valid, bounded
// S3 object names.
func (c *Cache) objectKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	objKey := fmt.Sprintf("%v/%v", objectPrefix, hex.EncodeToString(sum[:]))
	if c.gzip {
		objKey += ".gz"
	}

	return objKey
}

func (c *Cache) logf(format string, args ...any) {
	if !c.logErrors {
		return
	}
	log.Printf(format, args...)
}

func gzipBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write(data); err != nil {
		return nil, err
	}
	if err := gw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
